package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed caller request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCatalogEmpty signals that no catalog has been loaded.
	ErrCatalogEmpty = errors.New("catalog is empty")
	// ErrRateLimited signals a rate limit hit at the completion provider.
	ErrRateLimited = errors.New("rate limited")
	// ErrProviderError signals a completion provider failure.
	ErrProviderError = errors.New("completion provider error")
	// ErrProviderNotConfigured signals that no completion provider is wired.
	ErrProviderNotConfigured = errors.New("completion provider not configured")
)
