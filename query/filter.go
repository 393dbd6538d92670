package query

import (
	"context"
	"log/slog"

	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/index"
	"github.com/poiesic/carena/storage"
)

// Filter evaluates multi-field queries against a concern collection through
// its derived indices. A Filter holds no mutable state and is safe for
// concurrent use; each call takes its own query object.
type Filter struct {
	concernRepository storage.ConcernRepository
	indices           *index.Indices
	logger            *slog.Logger
}

// Option configures a Filter.
type Option func(*Filter) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Filter) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFilter creates a new filter over the given repository and indices.
func NewFilter(
	concernRepository storage.ConcernRepository,
	indices *index.Indices,
	opts ...Option,
) (*Filter, error) {
	if concernRepository == nil {
		return nil, ErrConcernRepositoryRequired
	}
	if indices == nil {
		return nil, ErrIndicesRequired
	}

	f := &Filter{
		concernRepository: concernRepository,
		indices:           indices,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// MatchIDs evaluates a query and returns the matching concern IDs in
// ascending order.
//
// Matching is AND across the three categories and OR within each:
//
//   - traits: union of the trait index entries; empty means no constraint
//   - domain: the domain index entry; empty means no constraint
//   - situations: union of the "<domain>:<situation>" index entries for the
//     query's domain; empty means no constraint
//
// Situations are always evaluated against the query's domain, so situations
// paired with an empty domain match nothing. An empty result is valid.
func (f *Filter) MatchIDs(q *core.Query) ([]core.ID, error) {
	if err := core.ValidateQuery(q); err != nil {
		return nil, err
	}

	matched := f.traitMatches(q.Traits)
	matched = matched.Intersect(f.domainMatches(q.Domain))
	matched = matched.Intersect(f.situationMatches(q.Domain, q.Situations))

	return matched.Sorted(), nil
}

// Apply evaluates a query and returns the matching concern records, ordered
// by ID ascending.
func (f *Filter) Apply(ctx context.Context, q *core.Query) ([]*core.Concern, error) {
	ids, err := f.MatchIDs(q)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*core.Concern{}, nil
	}

	concerns, err := f.concernRepository.GetConcerns(ctx, ids...)
	if err != nil {
		f.logger.Error("error retrieving matched concerns", "matchCount", len(ids), "err", err)
		return nil, err
	}
	if len(concerns) < len(ids) {
		// Indexed IDs should always resolve; a mismatch means the indices
		// are stale relative to the store.
		f.logger.Warn("indices out of date with store", "matched", len(ids), "resolved", len(concerns))
	}

	return concerns, nil
}

func (f *Filter) traitMatches(traits []string) index.IDSet {
	if len(traits) == 0 {
		return f.indices.All
	}
	matched := make(index.IDSet)
	for _, trait := range traits {
		for id := range f.indices.Traits[trait] {
			matched.Add(id)
		}
	}
	return matched
}

func (f *Filter) domainMatches(domain core.Domain) index.IDSet {
	if domain == "" {
		return f.indices.All
	}
	set := f.indices.Domains[domain]
	if set == nil {
		return make(index.IDSet)
	}
	return set
}

func (f *Filter) situationMatches(domain core.Domain, situations []string) index.IDSet {
	if len(situations) == 0 {
		return f.indices.All
	}
	matched := make(index.IDSet)
	for _, situation := range situations {
		for id := range f.indices.Situations[index.SituationKey(domain, situation)] {
			matched.Add(id)
		}
	}
	return matched
}
