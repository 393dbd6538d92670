package badger

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage"
)

// CareRepository implements storage.CareRepository for BadgerDB.
type CareRepository struct {
	backend *Backend
}

var _ storage.CareRepository = (*CareRepository)(nil)

// NewCareRepository creates a new CareRepository.
func NewCareRepository(backend *Backend) *CareRepository {
	return &CareRepository{
		backend: backend,
	}
}

// Close releases resources. CareRepository has no resources to release.
func (r *CareRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CareRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutCares stores one or more cares.
func (r *CareRepository) PutCares(ctx context.Context, cares ...*core.Care) ([]*core.Care, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, care := range cares {
			// Use content-based ID if not set
			if care.Id == 0 {
				care.Id = core.IDFromSlug(care.Slug)
			}

			care.InsertedAt = time.Now().UTC()
			care.UpdatedAt = care.InsertedAt

			key := makeCareKey(care.Id)
			value, err := storage.MarshalCare(care)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return cares, err
}

// DeleteCares removes cares by their IDs, along with their variant index entries.
func (r *CareRepository) DeleteCares(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCareKey(id)
			care, err := r.readCare(tx, key)
			if err != nil {
				return err
			}
			if care == nil {
				return storage.ErrNotFound
			}

			// Collect and delete care->variant index entries
			var indexKeys [][]byte
			opts := badger.DefaultIteratorOptions
			opts.Prefix = makePartialCareVariantKey(id)
			iter := tx.NewIterator(opts)
			for iter.Rewind(); iter.Valid(); iter.Next() {
				indexKeys = append(indexKeys, iter.Item().KeyCopy(nil))
			}
			iter.Close()
			for _, indexKey := range indexKeys {
				if err := tx.Delete(indexKey); err != nil {
					return err
				}
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCare retrieves a single care by ID.
func (r *CareRepository) GetCare(ctx context.Context, id core.ID) (*core.Care, error) {
	var result *core.Care
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCareKey(id)
		var err error
		result, err = r.readCare(tx, key)
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

// GetCares retrieves multiple cares by their IDs.
func (r *CareRepository) GetCares(ctx context.Context, ids ...core.ID) ([]*core.Care, error) {
	var result []*core.Care
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCareKey(id)
			care, err := r.readCare(tx, key)
			if err != nil {
				return err
			}
			if care != nil {
				result = append(result, care)
			}
		}
		return nil
	}, false)
	return result, err
}

// PutVariants stores one or more care variants and maintains the care->variant index.
func (r *CareRepository) PutVariants(ctx context.Context, variants ...*core.CareVariant) ([]*core.CareVariant, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, variant := range variants {
			// Use content-based ID if not set
			if variant.Id == 0 {
				variant.Id = core.IDFromSlug(variant.Slug)
			}

			variant.InsertedAt = time.Now().UTC()
			variant.UpdatedAt = variant.InsertedAt

			key := makeVariantKey(variant.Id)
			value, err := storage.MarshalVariant(variant)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update care->variant index
			indexKey := makeCareVariantKey(variant.CareId, variant.Id)
			if err := tx.Set(indexKey, storage.MarshalID(variant.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return variants, err
}

// GetVariant retrieves a single variant by ID.
func (r *CareRepository) GetVariant(ctx context.Context, id core.ID) (*core.CareVariant, error) {
	var result *core.CareVariant
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeVariantKey(id)
		var err error
		result, err = r.readVariant(tx, key)
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

// GetVariants retrieves multiple variants by their IDs.
func (r *CareRepository) GetVariants(ctx context.Context, ids ...core.ID) ([]*core.CareVariant, error) {
	var result []*core.CareVariant
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeVariantKey(id)
			variant, err := r.readVariant(tx, key)
			if err != nil {
				return err
			}
			if variant != nil {
				result = append(result, variant)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetVariantsByCare retrieves all variants of a care, ordered by variant ID.
func (r *CareRepository) GetVariantsByCare(ctx context.Context, careID core.ID) ([]*core.CareVariant, error) {
	var results []*core.CareVariant
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialCareVariantKey(careID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}

			// Read the variant ID from the index
			var variantID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				variantID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full variant
			variant, err := r.readVariant(tx, makeVariantKey(variantID))
			if err != nil {
				return err
			}
			if variant != nil {
				results = append(results, variant)
			}
		}
		return nil
	}, false)

	return results, err
}

// readCare reads a care by key within a transaction.
// Returns nil (no error) if the key doesn't exist.
func (r *CareRepository) readCare(tx *badger.Txn, key []byte) (*core.Care, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var care *core.Care
	err = item.Value(func(val []byte) error {
		var err error
		care, err = storage.UnmarshalCare(val)
		return err
	})
	return care, err
}

// readVariant reads a variant by key within a transaction.
// Returns nil (no error) if the key doesn't exist.
func (r *CareRepository) readVariant(tx *badger.Txn, key []byte) (*core.CareVariant, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var variant *core.CareVariant
	err = item.Value(func(val []byte) error {
		var err error
		variant, err = storage.UnmarshalVariant(val)
		return err
	})
	return variant, err
}
