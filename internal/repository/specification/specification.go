package specification

// Specification filters in-memory collections loaded from the record store.
type Specification[T any] interface {
	IsSatisfiedBy(item T) bool
}

// All returns the items matching every specification.
func All[T any](items []T, specs ...Specification[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, specs...) {
			out = append(out, item)
		}
	}
	return out
}

// First returns the first matching item.
func First[T any](items []T, specs ...Specification[T]) (T, bool) {
	for _, item := range items {
		if matches(item, specs...) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Count returns the number of matching items.
func Count[T any](items []T, specs ...Specification[T]) int {
	n := 0
	for _, item := range items {
		if matches(item, specs...) {
			n++
		}
	}
	return n
}

func matches[T any](item T, specs ...Specification[T]) bool {
	for _, spec := range specs {
		if !spec.IsSatisfiedBy(item) {
			return false
		}
	}
	return true
}
