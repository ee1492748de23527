package curator

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogPath string

	completer     Completer
	shortlistSize int

	defaultLimit int
	maxLimit     int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogFile sets the catalog snapshot file to load. Required.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithCompleter sets the completion provider used for chat replies.
// Optional; without it Chat answers with grounded fallback suggestions.
func WithCompleter(completer Completer) Option {
	return optionFunc(func(c *clientConfig) {
		c.completer = completer
	})
}

// WithShortlistSize sets how many ranked items are offered to the
// completion provider per chat turn. Default: 12.
func WithShortlistSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.shortlistSize = n
	})
}

// WithPagination sets the default and maximum search result limits.
// Defaults: 20 and 100.
func WithPagination(defaultLimit, maxLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
