package implementation

import (
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/pkg/recordstore"
)

func warnFunc(log logger.ILogger) recordstore.WarnFunc {
	return func(key string, err error) {
		log.Warn("recordstore", "Discarding unreadable collection", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// upsertHead prepends item, dropping any prior element matched by same,
// so the newest write always lands at position 0. When cap is positive
// the result is truncated from the tail.
func upsertHead[T any](items []T, item T, same func(T) bool, cap int) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	for _, existing := range items {
		if !same(existing) {
			out = append(out, existing)
		}
	}
	if cap > 0 && len(out) > cap {
		out = out[:cap]
	}
	return out
}

// removeWhere drops every element matched by the predicate.
func removeWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
