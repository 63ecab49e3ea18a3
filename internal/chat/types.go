// Package chat implements the conversational assistant: the conversation
// model, the orb state machine driving the voice UI, and the service that
// brokers between the session store and the LLM provider.
package chat

import (
	"time"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message in a conversation.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the full ordered history for one session. The whole thing
// is retained for display; only a bounded window is ever sent upstream.
type Conversation struct {
	SessionID    string    `json:"session_id"`
	Turns        []Turn    `json:"turns"`
	StartedAt    time.Time `json:"started_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Window returns the most recent n turns. It exists as its own function,
// rather than truncation buried in the submit path, so the rule that bounds
// the upstream payload is testable in isolation.
func Window(turns []Turn, n int) []Turn {
	if n <= 0 || len(turns) == 0 {
		return nil
	}
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}
