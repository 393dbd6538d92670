package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage"
)

// defaultBatchSize is how many records one worker writes per transaction.
const defaultBatchSize = 64

// Loader ingests authored catalogs into the record store. Concerns, cares,
// and variants are written concurrently in batches; bundles are written last
// so a loaded bundle never precedes the records it orders.
type Loader struct {
	concernRepository storage.ConcernRepository
	careRepository    storage.CareRepository
	bundleRepository  storage.BundleRepository
	pool              *ants.Pool
	batchSize         int
	logger            *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records each worker writes per transaction.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		l.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new catalog loader.
func NewLoader(
	concernRepository storage.ConcernRepository,
	careRepository storage.CareRepository,
	bundleRepository storage.BundleRepository,
	opts ...Option,
) (*Loader, error) {
	if concernRepository == nil {
		return nil, ErrConcernRepositoryRequired
	}
	if careRepository == nil {
		return nil, ErrCareRepositoryRequired
	}
	if bundleRepository == nil {
		return nil, ErrBundleRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		concernRepository: concernRepository,
		careRepository:    careRepository,
		bundleRepository:  bundleRepository,
		pool:              pool,
		batchSize:         defaultBatchSize,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// LoadStats summarizes one catalog load.
type LoadStats struct {
	Concerns int
	Cares    int
	Variants int
	Bundles  int
	Elapsed  time.Duration
}

// LoadFile parses a catalog JSON file and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*LoadStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	return l.Load(ctx, &catalog)
}

// Load validates and stores every record of the catalog. Validation runs
// up front so a malformed catalog never leaves a half-written store from
// this call; writes then proceed concurrently.
func (l *Loader) Load(ctx context.Context, catalog *Catalog) (*LoadStats, error) {
	if catalog == nil {
		return nil, ErrMalformedCatalog
	}
	started := time.Now()

	concerns := make([]*core.Concern, len(catalog.Concerns))
	for i, record := range catalog.Concerns {
		concerns[i] = record.toConcern()
		if err := core.ValidateConcern(concerns[i]); err != nil {
			return nil, fmt.Errorf("concern %d (%q): %w", i, record.Id, err)
		}
	}

	cares := make([]*core.Care, len(catalog.Cares))
	for i, record := range catalog.Cares {
		cares[i] = record.toCare()
		if err := core.ValidateCare(cares[i]); err != nil {
			return nil, fmt.Errorf("care %d (%q): %w", i, record.Id, err)
		}
	}

	variants := make([]*core.CareVariant, len(catalog.Variants))
	for i, record := range catalog.Variants {
		variants[i] = record.toVariant()
		if err := core.ValidateVariant(variants[i]); err != nil {
			return nil, fmt.Errorf("variant %d (%q): %w", i, record.Id, err)
		}
	}

	bundles := make([]*core.Bundle, len(catalog.Bundles))
	for i, record := range catalog.Bundles {
		bundles[i] = record.toBundle()
		if err := core.ValidateBundle(bundles[i]); err != nil {
			return nil, fmt.Errorf("bundle %d (%q): %w", i, record.ConcernId, err)
		}
	}

	group := newWriteGroup(ctx, l.pool)
	forEachBatch(concerns, l.batchSize, func(batch []*core.Concern) {
		group.submit(func(ctx context.Context) error {
			_, err := l.concernRepository.PutConcerns(ctx, batch...)
			return err
		})
	})
	forEachBatch(cares, l.batchSize, func(batch []*core.Care) {
		group.submit(func(ctx context.Context) error {
			_, err := l.careRepository.PutCares(ctx, batch...)
			return err
		})
	})
	forEachBatch(variants, l.batchSize, func(batch []*core.CareVariant) {
		group.submit(func(ctx context.Context) error {
			_, err := l.careRepository.PutVariants(ctx, batch...)
			return err
		})
	})
	if err := group.wait(); err != nil {
		l.logger.Error("error writing catalog records", "err", err)
		return nil, err
	}

	// Bundles go in after the records they reference.
	group = newWriteGroup(ctx, l.pool)
	forEachBatch(bundles, l.batchSize, func(batch []*core.Bundle) {
		group.submit(func(ctx context.Context) error {
			_, err := l.bundleRepository.PutBundles(ctx, batch...)
			return err
		})
	})
	if err := group.wait(); err != nil {
		l.logger.Error("error writing catalog bundles", "err", err)
		return nil, err
	}

	stats := &LoadStats{
		Concerns: len(concerns),
		Cares:    len(cares),
		Variants: len(variants),
		Bundles:  len(bundles),
		Elapsed:  time.Since(started),
	}
	l.logger.Info("catalog loaded",
		"concerns", stats.Concerns,
		"cares", stats.Cares,
		"variants", stats.Variants,
		"bundles", stats.Bundles,
		"elapsed", stats.Elapsed)
	return stats, nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

func forEachBatch[T any](records []T, size int, fn func(batch []T)) {
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		fn(records[start:end])
	}
}

// writeGroup runs write closures on a shared pool and keeps the first error.
type writeGroup struct {
	ctx  context.Context
	pool *ants.Pool
	wg   sync.WaitGroup

	mu  sync.Mutex
	err error
}

func newWriteGroup(ctx context.Context, pool *ants.Pool) *writeGroup {
	return &writeGroup{ctx: ctx, pool: pool}
}

func (g *writeGroup) submit(fn func(ctx context.Context) error) {
	g.wg.Add(1)
	task := func() {
		defer g.wg.Done()
		if err := fn(g.ctx); err != nil {
			g.record(err)
		}
	}
	if err := g.pool.Submit(task); err != nil {
		g.wg.Done()
		g.record(err)
	}
}

func (g *writeGroup) record(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err == nil {
		g.err = err
	}
}

func (g *writeGroup) wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}
