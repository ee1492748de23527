package curator

import "context"

// Kind distinguishes catalog item kinds.
type Kind string

// Kind constants.
const (
	KindBook      Kind = "book"
	KindMedia     Kind = "media"
	KindGame      Kind = "game"
	KindEquipment Kind = "equipment"
	KindComic     Kind = "comic"
	KindThing     Kind = "thing"
)

// Role identifies the author of a conversation message.
type Role string

// Role constants.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Item is a catalog entry returned by search and recommendations.
type Item struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Creator     string
	Subjects    []string
	ISBN        string
	Formats     []Format
	Rating      *float64
	Popular     bool
	Available   bool
}

// Format is one lendable form of an item with its availability.
type Format struct {
	Name   string
	Status string
}

// Message is one turn in a conversation.
type Message struct {
	Role    Role
	Content string
}

// ChatReply is the assistant's answer to a conversation.
type ChatReply struct {
	Content         string
	Recommendations []Item
	Fallback        bool
	TotalTokens     int
}

// Completer generates an assistant reply from a conversation.
// Implementations call out to an LLM provider.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// CompletionRequest carries the system prompt and conversation history.
type CompletionRequest struct {
	System   string
	Messages []Message
}

// CompletionResult carries the generated reply and token usage.
type CompletionResult struct {
	Content      string
	PromptTokens int
	TotalTokens  int
}
