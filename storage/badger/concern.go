package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage"
)

// ConcernRepository implements storage.ConcernRepository for BadgerDB.
type ConcernRepository struct {
	backend *Backend
}

var _ storage.ConcernRepository = (*ConcernRepository)(nil)

// NewConcernRepository creates a new ConcernRepository.
func NewConcernRepository(backend *Backend) *ConcernRepository {
	return &ConcernRepository{
		backend: backend,
	}
}

// Close releases resources. ConcernRepository has no resources to release.
func (r *ConcernRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ConcernRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutConcerns stores one or more concerns.
func (r *ConcernRepository) PutConcerns(ctx context.Context, concerns ...*core.Concern) ([]*core.Concern, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, concern := range concerns {
			// Use content-based ID if not set
			if concern.Id == 0 {
				concern.Id = core.IDFromSlug(concern.Slug)
			}

			concern.InsertedAt = time.Now().UTC()
			concern.UpdatedAt = concern.InsertedAt

			key := makeConcernKey(concern.Id)
			value, err := storage.MarshalConcern(concern)
			if err != nil {
				return err
			}
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return concerns, err
}

// DeleteConcerns removes concerns by their IDs.
func (r *ConcernRepository) DeleteConcerns(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeConcernKey(id)
			concern, err := r.readConcern(tx, key)
			if err != nil {
				return err
			}
			if concern == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetConcern retrieves a single concern by ID.
func (r *ConcernRepository) GetConcern(ctx context.Context, id core.ID) (*core.Concern, error) {
	var result *core.Concern
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeConcernKey(id)
		var err error
		result, err = r.readConcern(tx, key)
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

// GetConcerns retrieves multiple concerns by their IDs.
func (r *ConcernRepository) GetConcerns(ctx context.Context, ids ...core.ID) ([]*core.Concern, error) {
	var result []*core.Concern
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeConcernKey(id)
			concern, err := r.readConcern(tx, key)
			if err != nil {
				return err
			}
			if concern != nil {
				result = append(result, concern)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllConcerns retrieves every stored concern, ordered by ID ascending.
func (r *ConcernRepository) AllConcerns(ctx context.Context) ([]*core.Concern, error) {
	var results []*core.Concern
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(concernRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var concern *core.Concern
			err := iter.Item().Value(func(val []byte) error {
				var err error
				concern, err = storage.UnmarshalConcern(val)
				return err
			})
			if err != nil {
				return err
			}
			if concern != nil {
				results = append(results, concern)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Keys are formatted decimal, so iteration order is lexicographic, not numeric.
	slices.SortFunc(results, func(a, b *core.Concern) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	return results, nil
}

// readConcern reads a concern by key within a transaction.
// Returns nil (no error) if the key doesn't exist.
func (r *ConcernRepository) readConcern(tx *badger.Txn, key []byte) (*core.Concern, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var concern *core.Concern
	err = item.Value(func(val []byte) error {
		var err error
		concern, err = storage.UnmarshalConcern(val)
		return err
	})
	return concern, err
}
