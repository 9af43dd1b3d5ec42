package recordstore

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps collections in process memory. It backs tests and local
// development; nothing survives a restart.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.([]byte), true, nil
	}
	return nil, false, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	// Copy so later mutations of the caller's buffer cannot leak in.
	buf := make([]byte, len(value))
	copy(buf, value)
	s.cache.Set(key, buf, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
