package memory

import (
	"time"

	"radiant-system-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.SessionSnapshot) {
	r.cache.Set(session.TokenId, session, time.Until(session.ExpiresAt))
}

func (r *SessionRepository) Get(tokenId string) (*entity.SessionSnapshot, bool) {
	if x, found := r.cache.Get(tokenId); found {
		return x.(*entity.SessionSnapshot), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(tokenId string) {
	r.cache.Delete(tokenId)
}

// DeleteByEmail evicts every cached session belonging to the email.
// Used when a moderator changes a user's plan so stale snapshots do
// not survive the update.
func (r *SessionRepository) DeleteByEmail(email string) {
	for id, item := range r.cache.Items() {
		if s, ok := item.Object.(*entity.SessionSnapshot); ok && s.Email == email {
			r.cache.Delete(id)
		}
	}
}

// UpdateByEmail rewrites cached snapshots for the email in place.
func (r *SessionRepository) UpdateByEmail(email string, apply func(*entity.SessionSnapshot)) {
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*entity.SessionSnapshot); ok && s.Email == email {
			apply(s)
			r.Save(s)
		}
	}
}
