package storage

import (
	"context"

	"github.com/poiesic/carena/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ConcernRepository provides operations for managing concern records.
type ConcernRepository interface {
	Repository
	// PutConcerns stores one or more concerns.
	// For concerns with Id=0, derives the ID from the slug.
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns the concerns with IDs and timestamps populated.
	PutConcerns(ctx context.Context, concerns ...*core.Concern) ([]*core.Concern, error)

	// DeleteConcerns removes concerns by their IDs.
	// Returns ErrNotFound if any concern doesn't exist.
	DeleteConcerns(ctx context.Context, ids ...core.ID) error

	// GetConcern retrieves a single concern by ID.
	// Returns ErrNotFound if the concern doesn't exist.
	GetConcern(ctx context.Context, id core.ID) (*core.Concern, error)

	// GetConcerns retrieves multiple concerns by their IDs, in request order.
	// Returns only the concerns that exist (no error for missing concerns).
	GetConcerns(ctx context.Context, ids ...core.ID) ([]*core.Concern, error)

	// AllConcerns retrieves every stored concern, ordered by ID ascending.
	// Index construction iterates this once per store load.
	AllConcerns(ctx context.Context) ([]*core.Concern, error)
}

// CareRepository provides operations for managing cares and their domain variants.
type CareRepository interface {
	Repository
	// PutCares stores one or more cares.
	// For cares with Id=0, derives the ID from the slug.
	// Sets InsertedAt/UpdatedAt timestamps.
	PutCares(ctx context.Context, cares ...*core.Care) ([]*core.Care, error)

	// DeleteCares removes cares by their IDs, along with their variant index entries.
	// Returns ErrNotFound if any care doesn't exist.
	DeleteCares(ctx context.Context, ids ...core.ID) error

	// GetCare retrieves a single care by ID.
	// Returns ErrNotFound if the care doesn't exist.
	GetCare(ctx context.Context, id core.ID) (*core.Care, error)

	// GetCares retrieves multiple cares by their IDs, in request order.
	// Returns only the cares that exist (no error for missing cares).
	GetCares(ctx context.Context, ids ...core.ID) ([]*core.Care, error)

	// PutVariants stores one or more care variants and maintains the
	// care->variant index.
	PutVariants(ctx context.Context, variants ...*core.CareVariant) ([]*core.CareVariant, error)

	// GetVariant retrieves a single variant by ID.
	// Returns ErrNotFound if the variant doesn't exist.
	GetVariant(ctx context.Context, id core.ID) (*core.CareVariant, error)

	// GetVariants retrieves multiple variants by their IDs, in request order.
	// Returns only the variants that exist (no error for missing variants).
	GetVariants(ctx context.Context, ids ...core.ID) ([]*core.CareVariant, error)

	// GetVariantsByCare retrieves all variants of a care, ordered by variant ID.
	GetVariantsByCare(ctx context.Context, careID core.ID) ([]*core.CareVariant, error)
}

// BundleRepository provides operations for managing remedy bundles.
// Bundles are keyed by concern ID, so at most one bundle exists per concern;
// storing a second bundle for the same concern overwrites the first.
type BundleRepository interface {
	Repository
	// PutBundles stores one or more bundles.
	// Sets InsertedAt/UpdatedAt timestamps.
	PutBundles(ctx context.Context, bundles ...*core.Bundle) ([]*core.Bundle, error)

	// DeleteBundles removes bundles by their concern IDs.
	// Returns ErrNotFound if any bundle doesn't exist.
	DeleteBundles(ctx context.Context, concernIDs ...core.ID) error

	// GetBundle retrieves the bundle for a concern.
	// Returns ErrNotFound if the concern has no bundle.
	GetBundle(ctx context.Context, concernID core.ID) (*core.Bundle, error)
}
