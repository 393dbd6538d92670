package index

import (
	"context"
	"slices"

	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage"
)

// IDSet is a set of concern IDs.
type IDSet map[core.ID]struct{}

// NewIDSet creates a set containing the given IDs.
func NewIDSet(ids ...core.ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an ID into the set.
func (s IDSet) Add(id core.ID) {
	s[id] = struct{}{}
}

// Contains reports whether the set holds id.
func (s IDSet) Contains(id core.ID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the set's IDs in ascending order.
// Map iteration order is not deterministic; every consumer that surfaces
// results must go through this.
func (s IDSet) Sorted() []core.ID {
	ids := make([]core.ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Intersect returns a new set holding the IDs present in both sets.
func (s IDSet) Intersect(other IDSet) IDSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(IDSet)
	for id := range small {
		if large.Contains(id) {
			out.Add(id)
		}
	}
	return out
}

// Indices are the derived lookup structures over a loaded concern collection.
// They are disposable: rebuild whenever the store changes (in practice once,
// at startup) and share read-only across concurrent callers.
type Indices struct {
	// Traits maps a trait type to the concerns associated with it.
	Traits map[string]IDSet

	// Domains maps a domain to the concerns that define at least one
	// situation list for it.
	Domains map[core.Domain]IDSet

	// Situations maps a compound "<domain>:<situation>" key to the concerns
	// listing that situation under that domain.
	Situations map[string]IDSet

	// All is the universe of concern IDs, used as the wildcard match set.
	All IDSet
}

// SituationKey builds the compound key for the situations index.
func SituationKey(domain core.Domain, situation string) string {
	return string(domain) + ":" + situation
}

// Build derives indices from every concern in the repository.
func Build(ctx context.Context, concerns storage.ConcernRepository) (*Indices, error) {
	all, err := concerns.AllConcerns(ctx)
	if err != nil {
		return nil, err
	}
	return BuildFromConcerns(all), nil
}

// BuildFromConcerns derives indices from an in-memory concern collection.
// Concerns with empty trait, domain, or situation data simply contribute no
// entries; this never fails.
func BuildFromConcerns(concerns []*core.Concern) *Indices {
	idx := &Indices{
		Traits:     make(map[string]IDSet),
		Domains:    make(map[core.Domain]IDSet),
		Situations: make(map[string]IDSet),
		All:        make(IDSet),
	}

	for _, concern := range concerns {
		idx.All.Add(concern.Id)

		for _, trait := range concern.TraitTypes {
			set, ok := idx.Traits[trait]
			if !ok {
				set = make(IDSet)
				idx.Traits[trait] = set
			}
			set.Add(concern.Id)
		}

		for domain, situations := range concern.Situations {
			if len(situations) == 0 {
				continue
			}

			set, ok := idx.Domains[domain]
			if !ok {
				set = make(IDSet)
				idx.Domains[domain] = set
			}
			set.Add(concern.Id)

			for _, situation := range situations {
				key := SituationKey(domain, situation)
				set, ok := idx.Situations[key]
				if !ok {
					set = make(IDSet)
					idx.Situations[key] = set
				}
				set.Add(concern.Id)
			}
		}
	}

	return idx
}
