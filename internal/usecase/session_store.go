package usecase

import (
	"context"
	"sync"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSessionCapacity = 10000
	DefaultSessionTTL      = 2 * time.Hour
)

// sessionHandle owns one wizard session. The mutex guards session and disposed;
// ctx is cancelled when the session is disposed so in-flight calls stop.
type sessionHandle struct {
	mu       sync.Mutex
	id       string
	session  *wizard.Session
	catalog  []entities.Category
	baseline *entities.EstimateDocument
	disposed bool

	ctx    context.Context
	cancel context.CancelFunc
}

func newSessionHandle(s *wizard.Session, catalog []entities.Category) *sessionHandle {
	ctx, cancel := context.WithCancel(context.Background())
	return &sessionHandle{id: s.ID, session: s, catalog: catalog, ctx: ctx, cancel: cancel}
}

func (h *sessionHandle) dispose() {
	h.mu.Lock()
	h.disposed = true
	h.mu.Unlock()
	h.cancel()
}

// SessionStore keeps live wizard sessions. Sessions idle past the TTL or pushed out
// by capacity are disposed.
type SessionStore struct {
	cache *expirable.LRU[string, *sessionHandle]
}

func NewSessionStore(capacity int, ttl time.Duration) *SessionStore {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	onEvict := func(_ string, h *sessionHandle) { h.dispose() }
	return &SessionStore{cache: expirable.NewLRU[string, *sessionHandle](capacity, onEvict, ttl)}
}

func (s *SessionStore) put(h *sessionHandle) {
	s.cache.Add(h.id, h)
}

// get re-adds a live session so its TTL restarts on every access.
func (s *SessionStore) get(id string) (*sessionHandle, bool) {
	h, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	h.mu.Lock()
	disposed := h.disposed
	h.mu.Unlock()
	if disposed {
		return nil, false
	}
	s.cache.Add(id, h)
	return h, true
}

// remove disposes the session. It reports false when the id is unknown.
func (s *SessionStore) remove(id string) bool {
	h, ok := s.cache.Peek(id)
	if !ok {
		return false
	}
	s.cache.Remove(id)
	// Remove runs the eviction callback; dispose is idempotent either way.
	h.dispose()
	return true
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}
