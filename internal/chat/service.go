package chat

import (
	"context"
	goerrors "errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dukapos-web/internal/common/errors"
	"dukapos-web/internal/common/logger"
	"dukapos-web/internal/common/metrics"
)

// ServiceConfig holds the tuning knobs for the chat service.
type ServiceConfig struct {
	Timeout       time.Duration
	HistoryWindow int
}

// Result is the outcome of one chat turn.
type Result struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Fallback  bool   `json:"fallback,omitempty"`
}

// Service brokers chat turns between the session store and the LLM provider.
// One request per session may be in flight at a time; concurrent sends for
// the same session are rejected rather than queued.
type Service struct {
	provider Provider
	store    Store
	offer    Offer
	cfg      ServiceConfig
	log      logger.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(provider Provider, store Store, offer Offer, cfg ServiceConfig, log logger.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		offer:    offer,
		cfg:      cfg,
		log:      log,
		inFlight: make(map[string]bool),
	}
}

// Send processes one user message. An empty session ID starts a new session.
// Provider failures never surface to the caller as errors: the user turn is
// kept, a fixed fallback turn is appended, and the fallback reply is returned
// so the visitor always sees a usable answer with a contact path.
func (s *Service) Send(ctx context.Context, sessionID, message string) (*Result, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &errors.StandardError{
			Code:      errors.ErrCodeChatEmptyMessage,
			Message:   "Empty chat message rejected",
			Retryable: false,
			Timestamp: time.Now().UTC(),
		}
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if !s.acquire(sessionID) {
		metrics.ChatRequests.WithLabelValues("busy").Inc()
		return nil, &errors.StandardError{
			Code:      errors.ErrCodeChatBusy,
			Message:   "A request for this session is already in flight",
			Retryable: true,
			Timestamp: time.Now().UTC(),
		}
	}
	defer s.release(sessionID)

	conv, err := s.store.Load(ctx, sessionID)
	if err != nil {
		metrics.ChatRequests.WithLabelValues("store_error").Inc()
		return nil, errors.NewChatStoreFailedError(err)
	}

	// The user turn is persisted before the provider call so the history is
	// intact even when the completion fails.
	userTurn := Turn{Role: RoleUser, Content: message, Timestamp: time.Now().UTC()}
	if err := s.store.Append(ctx, sessionID, userTurn); err != nil {
		metrics.ChatRequests.WithLabelValues("store_error").Inc()
		return nil, errors.NewChatStoreFailedError(err)
	}

	history := Window(conv.Turns, s.cfg.HistoryWindow)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.provider.Reply(callCtx, message, history)
	metrics.ChatRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if goerrors.Is(err, context.DeadlineExceeded) {
			metrics.ChatRequests.WithLabelValues("timeout").Inc()
			s.log.Warn("chat completion timed out", map[string]interface{}{
				"session_id": sessionID,
				"elapsed_ms": time.Since(start).Milliseconds(),
			})
		} else {
			metrics.ChatRequests.WithLabelValues("llm_error").Inc()
			s.log.WithError(err).Error("chat completion failed", map[string]interface{}{
				"session_id": sessionID,
			})
		}
		return s.fallback(ctx, sessionID)
	}

	assistantTurn := Turn{Role: RoleAssistant, Content: reply, Timestamp: time.Now().UTC()}
	if err := s.store.Append(ctx, sessionID, assistantTurn); err != nil {
		// The reply already exists; losing the persisted copy is not worth
		// failing the turn over.
		s.log.WithError(err).Warn("failed to persist assistant turn", map[string]interface{}{
			"session_id": sessionID,
		})
	}

	metrics.ChatRequests.WithLabelValues("ok").Inc()
	return &Result{SessionID: sessionID, Reply: reply}, nil
}

// History returns the stored conversation for a session.
func (s *Service) History(ctx context.Context, sessionID string) (*Conversation, error) {
	conv, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.NewChatStoreFailedError(err)
	}
	return conv, nil
}

func (s *Service) fallback(ctx context.Context, sessionID string) (*Result, error) {
	reply := FallbackReply(s.offer)
	turn := Turn{Role: RoleAssistant, Content: reply, Timestamp: time.Now().UTC()}
	if err := s.store.Append(ctx, sessionID, turn); err != nil {
		s.log.WithError(err).Warn("failed to persist fallback turn", map[string]interface{}{
			"session_id": sessionID,
		})
	}
	return &Result{SessionID: sessionID, Reply: reply, Fallback: true}, nil
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
