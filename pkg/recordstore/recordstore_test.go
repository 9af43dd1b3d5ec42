package recordstore

import (
	"context"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		scope      []string
		want       string
	}{
		{
			name:       "unscoped collection",
			collection: CollectionUsers,
			want:       "radiant:users",
		},
		{
			name:       "scoped by email",
			collection: CollectionSkins,
			scope:      []string{"a@x.com"},
			want:       "radiant:skins:a@x.com",
		},
		{
			name:       "email is lowercased",
			collection: CollectionSkins,
			scope:      []string{"A@X.Com"},
			want:       "radiant:skins:a@x.com",
		},
		{
			name:       "multi-part scope",
			collection: CollectionVault,
			scope:      []string{"a@x.com", "plugin"},
			want:       "radiant:vault:a@x.com:plugin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.collection, tt.scope...)
			if got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

type testItem struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	coll := NewCollection[testItem](store, nil)
	ctx := context.Background()

	items := []testItem{{Id: "1", Name: "first"}, {Id: "2", Name: "second"}}
	if err := coll.Write(ctx, "k", items); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := coll.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2 || got[0].Id != "1" || got[1].Name != "second" {
		t.Errorf("Read() = %v, want %v", got, items)
	}
}

func TestCollectionMissingKeyIsEmpty(t *testing.T) {
	coll := NewCollection[testItem](NewMemoryStore(), nil)

	got, err := coll.Read(context.Background(), "nothing-here")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Read() on missing key = %v, want empty slice", got)
	}
}

func TestCollectionCorruptValueFailsSoft(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("{not json")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var warnedKey string
	coll := NewCollection[testItem](store, func(key string, err error) {
		warnedKey = key
	})

	got, err := coll.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() on corrupt value = %v, want empty slice", got)
	}
	if warnedKey != "k" {
		t.Errorf("warn hook got key %q, want %q", warnedKey, "k")
	}
}

func TestCollectionWriteNilResetsToEmpty(t *testing.T) {
	store := NewMemoryStore()
	coll := NewCollection[testItem](store, nil)
	ctx := context.Background()

	if err := coll.Write(ctx, "k", nil); err != nil {
		t.Fatalf("Write(nil) error = %v", err)
	}
	raw, found, err := store.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("Get() = %v, %v, %v", raw, found, err)
	}
	if string(raw) != "[]" {
		t.Errorf("stored value = %q, want %q", raw, "[]")
	}
}

func TestMemoryStoreCopiesValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	buf := []byte(`[{"id":"1"}]`)
	if err := store.Set(ctx, "k", buf); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	buf[2] = 'x'

	raw, _, _ := store.Get(ctx, "k")
	if string(raw) != `[{"id":"1"}]` {
		t.Errorf("stored value mutated through caller buffer: %q", raw)
	}
}
