package domain

import "context"

// CatalogIndex defines the interface for product catalog lookups.
// Implementations are read-only after construction; returned slices are
// shared views and must be copied before mutation.
type CatalogIndex interface {
	// Lookup returns the products for a (style, roomType) pair, falling back
	// to a default pair when no exact entry exists. It never fails.
	Lookup(style, roomType string) []Product

	// Complementary returns the products registered as coordinating
	// suggestions for a retained item slot in a given style.
	Complementary(kind KeepKind, style string) []Product
}

// CreditLedger defines the interface for per-user restyle credit tracking.
type CreditLedger interface {
	Get(ctx context.Context, userID string) (int, error)
	Decrement(ctx context.Context, userID string) error
	Grant(ctx context.Context, userID string, amount int) error
}

// ImageProvider defines the interface for the external AI image
// transformation service.
type ImageProvider interface {
	// Enabled reports whether the provider is configured for outbound calls.
	Enabled() bool

	Transform(ctx context.Context, req TransformRequest) (*TransformResult, error)
}
