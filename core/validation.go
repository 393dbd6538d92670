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


package core

import "fmt"

// ValidateConcern validates a Concern according to domain rules.
//
// Validation rules:
//   - Slug must not be empty
//   - Title must not be empty
//
// NOT validated (soft invariants, handled defensively at read time):
//   - CareIds resolving to stored cares
//   - Situations/Examples keyed by supported domains
func ValidateConcern(concern *Concern) error {
	if concern == nil {
		return fmt.Errorf("%w: concern is nil", ErrInvalidConcern)
	}

	if concern.Slug == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcern, ErrEmptySlug)
	}

	if concern.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConcern, ErrEmptyTitle)
	}

	return nil
}

// ValidateCare validates a Care according to domain rules.
//
// Validation rules:
//   - Slug must not be empty
//   - Title must not be empty
//   - Bullets must not exceed MaxCareBullets entries
func ValidateCare(care *Care) error {
	if care == nil {
		return fmt.Errorf("%w: care is nil", ErrInvalidCare)
	}

	if care.Slug == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCare, ErrEmptySlug)
	}

	if care.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCare, ErrEmptyTitle)
	}

	if len(care.Bullets) > MaxCareBullets {
		return fmt.Errorf("%w: %w: got %d, max %d", ErrInvalidCare, ErrTooManyBullets, len(care.Bullets), MaxCareBullets)
	}

	return nil
}

// ValidateVariant validates a CareVariant according to domain rules.
//
// Validation rules:
//   - Slug must not be empty
//   - CareId must be set
//   - Domain must not be empty
//
// The domain is NOT required to be one of the supported domains: a variant
// carrying an unknown domain simply never matches a view and degrades at
// read time rather than failing the load.
func ValidateVariant(variant *CareVariant) error {
	if variant == nil {
		return fmt.Errorf("%w: variant is nil", ErrInvalidVariant)
	}

	if variant.Slug == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVariant, ErrEmptySlug)
	}

	if variant.CareId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidVariant, ErrMissingCareRef)
	}

	if variant.Domain == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVariant, ErrEmptyVariantDomain)
	}

	return nil
}

// ValidateBundle validates a Bundle according to domain rules.
//
// Validation rules:
//   - ConcernId must be set
//   - every entry must name a care
//
// NOT validated: entry cares and variants resolving to stored records, and
// variants belonging to the entry's care. Those are soft invariants the view
// assembler degrades over.
func ValidateBundle(bundle *Bundle) error {
	if bundle == nil {
		return fmt.Errorf("%w: bundle is nil", ErrInvalidBundle)
	}

	if bundle.ConcernId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBundle, ErrMissingConcernRef)
	}

	for i, entry := range bundle.Entries {
		if entry.CareId == 0 {
			return fmt.Errorf("%w: %w: entry %d", ErrInvalidBundle, ErrMissingCareRef, i)
		}
	}

	return nil
}

// ValidateQuery validates a Query.
//
// A query with empty traits, domain, and situations is valid: every field is
// a wildcard. Only a structurally absent query is rejected.
func ValidateQuery(query *Query) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidQuery)
	}
	return nil
}
