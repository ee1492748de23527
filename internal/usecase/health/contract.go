package health

import "context"

// StorePinger checks cache store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker checks completion provider availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}

// CatalogCounter reports how many items the loaded catalog holds.
type CatalogCounter interface {
	Count(ctx context.Context) int
}
