// Package assistant runs the patron conversation: shortlist the catalog for
// the prompt, call the language-model provider, ground the reply against the
// catalog, and fall back to local search when the provider is unavailable.
package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hearthlib/curator/internal/domain"
	"github.com/hearthlib/curator/internal/domain/catalog"
	"github.com/hearthlib/curator/internal/metrics"
	"github.com/hearthlib/curator/internal/usecase/intent"
	"github.com/hearthlib/curator/internal/usecase/recommend"
	"github.com/hearthlib/curator/internal/usecase/search"
)

const defaultShortlistSize = 12

// Reply is one assistant turn with its grounded recommendations.
type Reply struct {
	Content         string
	Recommendations []catalog.Item
	Fallback        bool
	TotalTokens     int
}

// Service coordinates one conversation turn.
type Service struct {
	completer     domain.Completer
	catalog       CatalogProvider
	logger        *zap.Logger
	shortlistSize int
}

// New creates an assistant service. completer may be nil, in which case every
// turn is answered by the local search fallback.
func New(completer domain.Completer, catalog CatalogProvider, logger *zap.Logger) *Service {
	return &Service{
		completer:     completer,
		catalog:       catalog,
		logger:        logger,
		shortlistSize: defaultShortlistSize,
	}
}

// WithShortlistSize overrides how many catalog items are summarized in the prompt.
func (s *Service) WithShortlistSize(n int) *Service {
	if n > 0 {
		s.shortlistSize = n
	}
	return s
}

// Chat answers the latest patron message in the conversation.
func (s *Service) Chat(ctx context.Context, messages []domain.Message) (Reply, error) {
	userMsg := latestUserMessage(messages)
	if userMsg == "" {
		return Reply{}, fmt.Errorf("%w: conversation has no user message", domain.ErrInvalidRequest)
	}

	items := s.catalog.Snapshot(ctx)
	if len(items) == 0 {
		return Reply{}, domain.ErrCatalogEmpty
	}

	in := intent.Analyze(userMsg)
	boost := func(it catalog.Item) int { return intent.Boost(it, in) }

	shortlist := search.Rank(userMsg, items, s.shortlistSize, boost)
	promptItems := shortlist
	if len(promptItems) == 0 {
		promptItems = popularItems(items, s.shortlistSize)
	}

	if s.completer == nil {
		return s.fallback(userMsg, in, shortlist), nil
	}

	result, err := s.completer.Complete(ctx, domain.CompletionRequest{
		System:   systemPrompt(promptItems, in),
		Messages: messages,
	})
	if err != nil {
		s.logger.Warn("completion failed, answering from local search",
			zap.String("intent", string(in.Primary)),
			zap.Error(err),
		)
		metrics.AssistantFallbackTotal.Inc()
		return s.fallback(userMsg, in, shortlist), nil
	}

	return Reply{
		Content:         result.Content,
		Recommendations: recommend.Extract(result.Content, items),
		TotalTokens:     result.TotalTokens,
	}, nil
}

func (s *Service) fallback(userMsg string, in intent.Intent, shortlist []catalog.Item) Reply {
	top := shortlist
	if len(top) > recommend.MaxRecommendations {
		top = top[:recommend.MaxRecommendations]
	}
	return Reply{
		Content:         fallbackContent(userMsg, in, shortlist),
		Recommendations: top,
		Fallback:        true,
	}
}

func latestUserMessage(messages []domain.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// popularItems returns up to n popular or available items, preserving catalog
// order. Used for prompt context when the query matched nothing.
func popularItems(items []catalog.Item, n int) []catalog.Item {
	out := make([]catalog.Item, 0, n)
	for _, it := range items {
		if !it.Popular() && !it.Available() {
			continue
		}
		out = append(out, it)
		if len(out) == n {
			break
		}
	}
	return out
}
