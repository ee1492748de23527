package replycache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hearthlib/curator/internal/db"
	"github.com/hearthlib/curator/internal/domain"
)

// --- Mocks ---

type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	lastTTL time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.lastTTL = ttl
	return nil
}

type mockCompleter struct {
	result domain.CompletionResult
	err    error
	calls  int
}

func (m *mockCompleter) Complete(
	_ context.Context, _ domain.CompletionRequest,
) (domain.CompletionResult, error) {
	m.calls++
	return m.result, m.err
}

func request(content string) domain.CompletionRequest {
	return domain.CompletionRequest{
		System:   "system prompt",
		Messages: []domain.Message{{Role: domain.RoleUser, Content: content}},
	}
}

// --- Tests ---

func TestComplete_MissThenHit(t *testing.T) {
	inner := &mockCompleter{result: domain.CompletionResult{Content: "a reply", TotalTokens: 9}}
	store := newMockStore()
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	first, err := cached.Complete(context.Background(), request("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Content != "a reply" || first.TotalTokens != 9 {
		t.Errorf("miss result = %+v", first)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.calls)
	}
	if store.lastTTL != time.Hour {
		t.Errorf("ttl = %v, want 1h", store.lastTTL)
	}

	second, err := cached.Complete(context.Background(), request("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Content != "a reply" {
		t.Errorf("hit content = %q", second.Content)
	}
	if second.TotalTokens != 0 {
		t.Errorf("hit TotalTokens = %d, want 0 (no provider call)", second.TotalTokens)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want still 1 after hit", inner.calls)
	}
}

func TestComplete_DifferentConversationsDoNotCollide(t *testing.T) {
	inner := &mockCompleter{result: domain.CompletionResult{Content: "r"}}
	cached := New(inner, newMockStore(), time.Hour, nil, zap.NewNop())

	_, _ = cached.Complete(context.Background(), request("first"))
	_, _ = cached.Complete(context.Background(), request("second"))

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2 distinct misses", inner.calls)
	}
}

func TestCacheKey_RoleSwapChangesKey(t *testing.T) {
	cached := New(nil, newMockStore(), time.Hour, nil, zap.NewNop())

	a := cached.cacheKey(domain.CompletionRequest{Messages: []domain.Message{
		{Role: domain.RoleUser, Content: "x"},
		{Role: domain.RoleAssistant, Content: "y"},
	}})
	b := cached.cacheKey(domain.CompletionRequest{Messages: []domain.Message{
		{Role: domain.RoleAssistant, Content: "x"},
		{Role: domain.RoleUser, Content: "y"},
	}})

	if a == b {
		t.Error("cache keys should differ when roles swap")
	}
	if !strings.HasPrefix(a, domain.KeyPrefix+"reply_cache:") {
		t.Errorf("key %q missing namespace prefix", a)
	}
}

func TestComplete_StoreErrorsFallThroughToProvider(t *testing.T) {
	inner := &mockCompleter{result: domain.CompletionResult{Content: "fresh"}}
	store := newMockStore()
	store.getErr = errors.New("store down")
	store.setErr = errors.New("store down")
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	got, err := cached.Complete(context.Background(), request("hello"))
	if err != nil {
		t.Fatalf("store failure must not fail the request: %v", err)
	}
	if got.Content != "fresh" {
		t.Errorf("content = %q, want provider reply", got.Content)
	}
}

func TestComplete_ProviderErrorPropagates(t *testing.T) {
	inner := &mockCompleter{err: domain.ErrProviderError}
	cached := New(inner, newMockStore(), time.Hour, nil, zap.NewNop())

	_, err := cached.Complete(context.Background(), request("hello"))
	if !errors.Is(err, domain.ErrProviderError) {
		t.Errorf("expected ErrProviderError, got %v", err)
	}
}

func TestComplete_EmptyReplyNotCached(t *testing.T) {
	inner := &mockCompleter{result: domain.CompletionResult{Content: ""}}
	store := newMockStore()
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	_, _ = cached.Complete(context.Background(), request("hello"))
	_, _ = cached.Complete(context.Background(), request("hello"))

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (empty replies are never cached)", inner.calls)
	}
	if len(store.data) != 0 {
		t.Errorf("store holds %d entries, want 0", len(store.data))
	}
}
