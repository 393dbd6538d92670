package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage"
)

// BundleRepository implements storage.BundleRepository for BadgerDB.
// Bundles are keyed by concern ID, so a second bundle for the same concern
// overwrites the first rather than coexisting with it.
type BundleRepository struct {
	backend *Backend
}

var _ storage.BundleRepository = (*BundleRepository)(nil)

// NewBundleRepository creates a new BundleRepository.
func NewBundleRepository(backend *Backend) *BundleRepository {
	return &BundleRepository{
		backend: backend,
	}
}

// Close releases resources. BundleRepository has no resources to release.
func (r *BundleRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *BundleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutBundles stores one or more bundles.
func (r *BundleRepository) PutBundles(ctx context.Context, bundles ...*core.Bundle) ([]*core.Bundle, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, bundle := range bundles {
			bundle.InsertedAt = time.Now().UTC()
			bundle.UpdatedAt = bundle.InsertedAt

			key := makeBundleKey(bundle.ConcernId)
			value, err := storage.MarshalBundle(bundle)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return bundles, err
}

// DeleteBundles removes bundles by their concern IDs.
func (r *BundleRepository) DeleteBundles(ctx context.Context, concernIDs ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, concernID := range concernIDs {
			key := makeBundleKey(concernID)
			bundle, err := r.readBundle(tx, key)
			if err != nil {
				return err
			}
			if bundle == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetBundle retrieves the bundle for a concern.
func (r *BundleRepository) GetBundle(ctx context.Context, concernID core.ID) (*core.Bundle, error) {
	var result *core.Bundle
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeBundleKey(concernID)
		var err error
		result, err = r.readBundle(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// readBundle reads a bundle by key within a transaction.
// Returns nil (no error) if the key doesn't exist.
func (r *BundleRepository) readBundle(tx *badger.Txn, key []byte) (*core.Bundle, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bundle *core.Bundle
	err = item.Value(func(val []byte) error {
		var err error
		bundle, err = storage.UnmarshalBundle(val)
		return err
	})
	return bundle, err
}
