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

import "errors"

// Domain validation errors
var (
	// ErrInvalidConcern indicates a Concern failed validation.
	ErrInvalidConcern = errors.New("invalid concern")

	// ErrInvalidCare indicates a Care failed validation.
	ErrInvalidCare = errors.New("invalid care")

	// ErrInvalidVariant indicates a CareVariant failed validation.
	ErrInvalidVariant = errors.New("invalid care variant")

	// ErrInvalidBundle indicates a Bundle failed validation.
	ErrInvalidBundle = errors.New("invalid bundle")

	// ErrInvalidQuery indicates a Query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptySlug indicates the Slug field is empty.
	ErrEmptySlug = errors.New("slug cannot be empty")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTooManyBullets indicates a care carries more summary bullets than allowed.
	ErrTooManyBullets = errors.New("too many bullets")

	// ErrMissingCareRef indicates a variant or bundle entry does not name a care.
	ErrMissingCareRef = errors.New("care reference cannot be empty")

	// ErrMissingConcernRef indicates a bundle does not name a concern.
	ErrMissingConcernRef = errors.New("concern reference cannot be empty")

	// ErrEmptyVariantDomain indicates a variant does not carry a domain.
	ErrEmptyVariantDomain = errors.New("variant domain cannot be empty")
)
