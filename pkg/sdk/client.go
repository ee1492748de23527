package curator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hearthlib/curator/internal/domain"
	domcat "github.com/hearthlib/curator/internal/domain/catalog"
	catalogrepo "github.com/hearthlib/curator/internal/repository/catalog"
	assistantuc "github.com/hearthlib/curator/internal/usecase/assistant"
	healthuc "github.com/hearthlib/curator/internal/usecase/health"
	"github.com/hearthlib/curator/internal/usecase/intent"
	"github.com/hearthlib/curator/internal/usecase/relevance"
	searchuc "github.com/hearthlib/curator/internal/usecase/search"
)

// Internal interfaces for test substitution.
type searchUseCase interface {
	Search(ctx context.Context, raw string, limit int, boost relevance.BoostFunc) []domcat.Item
}

type assistantUseCase interface {
	Chat(ctx context.Context, messages []domain.Message) (assistantuc.Reply, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the curator SDK entry point.
type Client struct {
	catalog      *catalogrepo.Repo
	searchSvc    searchUseCase
	assistantSvc assistantUseCase
	healthSvc    healthUseCase
	obs          *observer
}

// New creates a curator Client and loads the catalog snapshot.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.catalogPath == "" {
		return nil, errors.New("curator: catalog file required (use WithCatalogFile)")
	}

	repo, err := catalogrepo.Load(cfg.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("curator: load catalog: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(repo, cfg, obs), nil
}

func wireClient(repo *catalogrepo.Repo, cfg *clientConfig, obs *observer) *Client {
	searchSvc := searchuc.New(repo)
	if cfg.defaultLimit > 0 || cfg.maxLimit > 0 {
		searchSvc = searchSvc.WithPagination(cfg.defaultLimit, cfg.maxLimit)
	}

	// Completer: nil if not set (Chat falls back to grounded suggestions)
	var completer domain.Completer
	if cfg.completer != nil {
		completer = &completerAdapter{inner: cfg.completer}
	}

	assistantSvc := assistantuc.New(completer, repo, zap.NewNop())
	if cfg.shortlistSize > 0 {
		assistantSvc = assistantSvc.WithShortlistSize(cfg.shortlistSize)
	}

	var provChecker healthuc.ProviderChecker
	if hc, ok := completer.(domain.HealthChecker); ok {
		provChecker = hc
	}
	healthSvc := healthuc.New(repo, nil, provChecker)

	return &Client{
		catalog:      repo,
		searchSvc:    searchSvc,
		assistantSvc: assistantSvc,
		healthSvc:    healthSvc,
		obs:          obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {}

// Reload replaces the catalog snapshot with the contents of the given file.
// In-flight searches keep the old snapshot.
func (c *Client) Reload(path string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("reload", start, err) }()

	if err = c.catalog.Reload(path); err != nil {
		return fmt.Errorf("curator: reload catalog: %w", err)
	}
	return nil
}

// Search ranks catalog items by relevance to the query. The query's
// detected intent biases the ranking. limit <= 0 uses the default limit.
func (c *Client) Search(ctx context.Context, query string, limit int) []Item {
	start := time.Now()
	defer func() { c.obs.observe("search", start, nil) }()

	in := intent.Analyze(query)
	boost := func(it domcat.Item) int { return intent.Boost(it, in) }

	found := c.searchSvc.Search(ctx, query, limit, boost)
	return itemsFromDomain(found)
}

// Chat runs one conversation turn against the catalog.
// Recommendations only contain items the reply actually references.
func (c *Client) Chat(ctx context.Context, messages []Message) (reply ChatReply, err error) {
	start := time.Now()
	defer func() { c.obs.observe("chat", start, err) }()

	domMsgs := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		domMsgs = append(domMsgs, domain.Message{
			Role:    domain.Role(m.Role),
			Content: m.Content,
		})
	}

	r, err := c.assistantSvc.Chat(ctx, domMsgs)
	if err != nil {
		return ChatReply{}, fmt.Errorf("curator: chat: %w", err)
	}

	return ChatReply{
		Content:         r.Content,
		Recommendations: itemsFromDomain(r.Recommendations),
		Fallback:        r.Fallback,
		TotalTokens:     r.TotalTokens,
	}, nil
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component -> "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	defer func() { c.obs.observe("health", start, nil) }()

	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// completerAdapter wraps the public Completer to satisfy domain.Completer.
type completerAdapter struct {
	inner Completer
}

func (a *completerAdapter) Complete(
	ctx context.Context, req domain.CompletionRequest,
) (domain.CompletionResult, error) {
	msgs := make([]Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, Message{Role: Role(m.Role), Content: m.Content})
	}

	r, err := a.inner.Complete(ctx, CompletionRequest{System: req.System, Messages: msgs})
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("complete: %w", err)
	}
	return domain.CompletionResult{
		Content:      r.Content,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

func itemsFromDomain(items []domcat.Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, itemFromDomain(it))
	}
	return out
}

func itemFromDomain(it domcat.Item) Item {
	formats := make([]Format, 0, len(it.Formats()))
	for _, f := range it.Formats() {
		formats = append(formats, Format{Name: f.Name(), Status: string(f.Status())})
	}

	var rating *float64
	if r, ok := it.Rating(); ok {
		rating = &r
	}

	return Item{
		ID:          it.ID(),
		Kind:        Kind(it.Kind()),
		Title:       it.Title(),
		Description: it.Description(),
		Creator:     it.Creator(),
		Subjects:    it.Subjects(),
		ISBN:        it.ISBN(),
		Formats:     formats,
		Rating:      rating,
		Popular:     it.Popular(),
		Available:   it.Available(),
	}
}
