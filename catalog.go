// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package carena

import (
	"context"
	"log/slog"

	"github.com/poiesic/carena/index"
	"github.com/poiesic/carena/ingestion"
	"github.com/poiesic/carena/query"
	"github.com/poiesic/carena/recommend"
	"github.com/poiesic/carena/storage"
	"github.com/poiesic/carena/storage/badger"
	"github.com/poiesic/carena/view"
)

// Catalog is the top-level entry point: it owns the storage backend and
// hands out the pipeline components (loader, indices, filter, assembler,
// ranker) wired to it.
type Catalog struct {
	backend     *badger.Backend
	concernRepo storage.ConcernRepository
	careRepo    storage.CareRepository
	bundleRepo  storage.BundleRepository
	logger      *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	inMemory bool
}

// WithInMemory opens the backend without touching disk. Intended for tests
// and ephemeral sessions.
func WithInMemory() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// Open opens or creates a catalog store at filePath.
func Open(filePath string, opts ...CatalogOption) (*Catalog, error) {
	// Apply options
	options := &catalogOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		backend:     backend,
		concernRepo: badger.NewConcernRepository(backend),
		careRepo:    badger.NewCareRepository(backend),
		bundleRepo:  badger.NewBundleRepository(backend),
		logger:      slog.Default(),
	}, nil
}

func (c *Catalog) Close() error {
	// Repositories share the backend; closing it closes them all.
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (c *Catalog) ConcernRepository() storage.ConcernRepository {
	return c.concernRepo
}

func (c *Catalog) CareRepository() storage.CareRepository {
	return c.careRepo
}

func (c *Catalog) BundleRepository() storage.BundleRepository {
	return c.bundleRepo
}

// NewLoader creates a catalog loader writing into this store.
func (c *Catalog) NewLoader(opts ...ingestion.Option) (*ingestion.Loader, error) {
	return ingestion.NewLoader(c.concernRepo, c.careRepo, c.bundleRepo, opts...)
}

// BuildIndices derives the query indices from the current store contents.
// Callers hold the result for the lifetime of one loaded store and rebuild
// after loading new data.
func (c *Catalog) BuildIndices(ctx context.Context) (*index.Indices, error) {
	return index.Build(ctx, c.concernRepo)
}

// NewFilter creates a query filter over previously built indices.
func (c *Catalog) NewFilter(indices *index.Indices, opts ...query.Option) (*query.Filter, error) {
	return query.NewFilter(c.concernRepo, indices, opts...)
}

// NewAssembler creates a view assembler reading from this store.
func (c *Catalog) NewAssembler(opts ...view.Option) (*view.Assembler, error) {
	return view.NewAssembler(c.careRepo, c.bundleRepo, opts...)
}

// NewRanker creates a recommendation ranker. The ranker is stateless and
// store-independent; this constructor exists for symmetry with the other
// pipeline components.
func (c *Catalog) NewRanker(opts ...recommend.RankerOption) (*recommend.Ranker, error) {
	return recommend.NewRanker(opts...)
}
