package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "dukapos-web/internal/common/errors"
	"dukapos-web/internal/common/logger"
)

// ==========================
// Mock Implementations
// ==========================

type mockProvider struct {
	mu      sync.Mutex
	replyFn func(ctx context.Context, message string, history []Turn) (string, error)
	calls   []providerCall
}

type providerCall struct {
	message string
	history []Turn
}

func (m *mockProvider) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, providerCall{message: message, history: history})
	fn := m.replyFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, message, history)
	}
	return "mock reply", nil
}

func (m *mockProvider) lastCall() providerCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[len(m.calls)-1]
}

// ==========================
// Test Helper Functions
// ==========================

func testChatOffer() Offer {
	return Offer{
		Brand:        "DukaPOS",
		Product:      "DukaPOS",
		PriceLine:    "completely free",
		ContactPhone: "0700 123 456",
		WhatsApp:     "+254 700 123 456",
	}
}

func newTestService(t *testing.T, provider Provider) (*Service, *MemoryStore) {
	store := NewMemoryStore(time.Hour)
	svc := NewService(provider, store, testChatOffer(), ServiceConfig{
		Timeout:       5 * time.Second,
		HistoryWindow: 10,
	}, logger.NewTestLogger(t))
	return svc, store
}

// ==========================
// Send Tests
// ==========================

func TestService_Send_Success(t *testing.T) {
	provider := &mockProvider{}
	svc, store := newTestService(t, provider)

	result, err := svc.Send(context.Background(), "session-1", "do you support M-Pesa?")
	require.NoError(t, err)
	assert.Equal(t, "session-1", result.SessionID)
	assert.Equal(t, "mock reply", result.Reply)
	assert.False(t, result.Fallback)

	conv, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, conv.Turns, 2)
	assert.Equal(t, RoleUser, conv.Turns[0].Role)
	assert.Equal(t, "do you support M-Pesa?", conv.Turns[0].Content)
	assert.Equal(t, RoleAssistant, conv.Turns[1].Role)
}

func TestService_Send_EmptyMessageRejected(t *testing.T) {
	provider := &mockProvider{}
	svc, _ := newTestService(t, provider)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(context.Background(), "session-1", msg)
		require.Error(t, err)

		var stdErr *commonerrors.StandardError
		require.ErrorAs(t, err, &stdErr)
		assert.Equal(t, commonerrors.ErrCodeChatEmptyMessage, stdErr.Code)
	}
	assert.Empty(t, provider.calls, "empty input never reaches the provider")
}

func TestService_Send_AssignsSessionID(t *testing.T) {
	svc, _ := newTestService(t, &mockProvider{})

	result, err := svc.Send(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
}

func TestService_Send_ProviderFailureYieldsFallback(t *testing.T) {
	provider := &mockProvider{
		replyFn: func(context.Context, string, []Turn) (string, error) {
			return "", errors.New("upstream unavailable")
		},
	}
	svc, store := newTestService(t, provider)

	result, err := svc.Send(context.Background(), "session-1", "hello")
	require.NoError(t, err, "provider failures never surface as errors")
	assert.True(t, result.Fallback)
	assert.Contains(t, result.Reply, "0700 123 456")
	assert.Contains(t, result.Reply, "+254 700 123 456")

	conv, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, conv.Turns, 2, "user turn and fallback turn both persisted")
	assert.Equal(t, RoleAssistant, conv.Turns[1].Role)
	assert.Equal(t, result.Reply, conv.Turns[1].Content)
}

func TestService_Send_TimeoutYieldsFallback(t *testing.T) {
	provider := &mockProvider{
		replyFn: func(ctx context.Context, _ string, _ []Turn) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	store := NewMemoryStore(time.Hour)
	svc := NewService(provider, store, testChatOffer(), ServiceConfig{
		Timeout:       20 * time.Millisecond,
		HistoryWindow: 10,
	}, logger.NewTestLogger(t))

	result, err := svc.Send(context.Background(), "session-1", "hello")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
}

func TestService_Send_BusySessionRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	provider := &mockProvider{
		replyFn: func(context.Context, string, []Turn) (string, error) {
			close(started)
			<-release
			return "slow reply", nil
		},
	}
	svc, _ := newTestService(t, provider)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := svc.Send(context.Background(), "session-1", "first")
		assert.NoError(t, err)
	}()

	<-started
	_, err := svc.Send(context.Background(), "session-1", "second")
	require.Error(t, err)

	var stdErr *commonerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, commonerrors.ErrCodeChatBusy, stdErr.Code)

	// a different session is unaffected
	close(release)
	<-done
}

func TestService_Send_WindowsHistory(t *testing.T) {
	provider := &mockProvider{}
	store := NewMemoryStore(time.Hour)
	svc := NewService(provider, store, testChatOffer(), ServiceConfig{
		Timeout:       5 * time.Second,
		HistoryWindow: 10,
	}, logger.NewTestLogger(t))

	// seed 30 prior turns
	seed := make([]Turn, 0, 30)
	for i := 0; i < 30; i++ {
		seed = append(seed, Turn{Role: RoleUser, Content: "old"})
	}
	require.NoError(t, store.Append(context.Background(), "session-1", seed...))

	_, err := svc.Send(context.Background(), "session-1", "latest question")
	require.NoError(t, err)

	call := provider.lastCall()
	assert.Equal(t, "latest question", call.message)
	assert.Len(t, call.history, 10, "only the bounded window reaches the provider")
}

func TestService_History(t *testing.T) {
	svc, store := newTestService(t, &mockProvider{})
	require.NoError(t, store.Append(context.Background(), "session-1",
		Turn{Role: RoleUser, Content: "hello"}))

	conv, err := svc.History(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, conv.Turns, 1)
	assert.Equal(t, "hello", conv.Turns[0].Content)
}

// ==========================
// Fallback Copy Tests
// ==========================

func TestFallbackReply_CarriesContactPath(t *testing.T) {
	reply := FallbackReply(testChatOffer())
	assert.Contains(t, reply, "0700 123 456")
	assert.Contains(t, reply, "+254 700 123 456")
}

func TestSystemPrompt_CarriesOfferFacts(t *testing.T) {
	prompt := SystemPrompt(testChatOffer())
	assert.Contains(t, prompt, "DukaPOS")
	assert.Contains(t, prompt, "completely free")
	assert.Contains(t, prompt, "0700 123 456")
	assert.Contains(t, prompt, "ETIMS")
}
