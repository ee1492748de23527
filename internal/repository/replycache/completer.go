// Package replycache caches completion replies in a key-value store so
// repeated conversations skip the provider entirely.
package replycache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hearthlib/curator/internal/db"
	"github.com/hearthlib/curator/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "reply_cache:"

// store is the consumer interface for the reply cache.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedCompleter caches completion replies keyed by the full request.
type CachedCompleter struct {
	inner      domain.Completer
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Completer,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedCompleter {
	return &CachedCompleter{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Complete returns a cached reply or calls the inner completer.
// Cache hit: TotalTokens = 0 (no real tokens consumed).
func (c *CachedCompleter) Complete(
	ctx context.Context, req domain.CompletionRequest,
) (domain.CompletionResult, error) {
	key := c.cacheKey(req)

	if content, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return domain.CompletionResult{Content: content}, nil
	}

	c.incCache("miss")

	result, err := c.inner.Complete(ctx, req)
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("complete: %w", err)
	}

	c.putToCache(ctx, key, result.Content)
	return result, nil
}

// HealthCheck delegates to the inner completer when it supports checks.
func (c *CachedCompleter) HealthCheck(ctx context.Context) error {
	if hc, ok := c.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func (c *CachedCompleter) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the system prompt and every message. Role bytes are part of
// the hash so a user/assistant swap cannot collide.
func (c *CachedCompleter) cacheKey(req domain.CompletionRequest) string {
	h := sha256.New()
	h.Write([]byte(req.System))
	for _, m := range req.Messages {
		h.Write([]byte{0})
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
	}
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (c *CachedCompleter) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached reply", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *CachedCompleter) putToCache(ctx context.Context, key, content string) {
	if content == "" {
		return
	}
	if err := c.store.SetWithTTL(ctx, key, []byte(content), c.ttl); err != nil {
		c.logger.Warn("Failed to cache reply", zap.String("key", key), zap.Error(err))
	}
}
