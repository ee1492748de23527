package curator

import "github.com/hearthlib/curator/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest        = domain.ErrInvalidRequest
	ErrCatalogEmpty          = domain.ErrCatalogEmpty
	ErrRateLimited           = domain.ErrRateLimited
	ErrProviderError         = domain.ErrProviderError
	ErrProviderNotConfigured = domain.ErrProviderNotConfigured
)
