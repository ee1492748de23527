// Package domain holds shared domain contracts and sentinel errors.
package domain

import "context"

// Role identifies the author of a conversation message.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a patron conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest carries a system prompt and conversation history
// to a language-model provider.
type CompletionRequest struct {
	System   string
	Messages []Message
}

// CompletionResult is the provider's reply with token usage.
type CompletionResult struct {
	Content      string
	PromptTokens int
	TotalTokens  int
}

// Completer produces a model completion for a conversation.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// HealthChecker is implemented by completers that can verify provider reachability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
