package wizard

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// sessionStore TTL-хранилище сессий мастера
// Брошенные сессии истекают и вычищаются автоматически
type sessionStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache: gocache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

// put сохраняет сессию и продлевает её TTL
func (s *sessionStore) put(sess *session) {
	s.cache.Set(sess.id, sess, s.ttl)
}

// get возвращает сессию по ID
func (s *sessionStore) get(id string) (*session, bool) {
	value, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return value.(*session), true
}
