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


// Package storage provides the storage abstraction layer for carena.
//
// This package defines repository interfaces that decouple storage
// implementation from the query and assembly logic. It allows different
// storage backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - ConcernRepository: operations for concern records
//   - CareRepository: operations for cares and their domain variants
//   - BundleRepository: operations for per-concern remedy bundles
//
// Catalog records are immutable once loaded; repositories exist so the host
// can load, inspect, and replace the catalog, not to mutate it at query time.
//
// # Usage
//
// Create repositories through a backend:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	concerns := badger.NewConcernRepository(backend)
//
// Use in tests with in-memory storage:
//
//	concerns, cares, bundles, backend, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe. After the catalog is
// loaded, repositories may be shared read-only across concurrent callers.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support. Pass context.Background() for operations without
// specific timeout requirements.
package storage
