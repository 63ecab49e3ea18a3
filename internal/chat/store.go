package chat

import (
	"context"
	"sync"
	"time"
)

// Store persists conversations per session. Implementations must return an
// empty conversation, not an error, for an unknown session.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Conversation, error)
	Append(ctx context.Context, sessionID string, turns ...Turn) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is the in-process fallback used when Redis is not configured
// (development, tests). Sessions older than the TTL are dropped lazily on
// access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Conversation
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Conversation),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok || s.expired(conv) {
		delete(s.sessions, sessionID)
		return &Conversation{
			SessionID:    sessionID,
			Turns:        []Turn{},
			StartedAt:    s.now(),
			LastActivity: s.now(),
		}, nil
	}

	out := *conv
	out.Turns = append([]Turn(nil), conv.Turns...)
	return &out, nil
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions[sessionID]
	if !ok || s.expired(conv) {
		conv = &Conversation{
			SessionID: sessionID,
			Turns:     []Turn{},
			StartedAt: s.now(),
		}
		s.sessions[sessionID] = conv
	}
	conv.Turns = append(conv.Turns, turns...)
	conv.LastActivity = s.now()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) expired(conv *Conversation) bool {
	return s.ttl > 0 && s.now().Sub(conv.LastActivity) > s.ttl
}
