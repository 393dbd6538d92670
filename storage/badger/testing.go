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


package badger

import "github.com/poiesic/carena/storage"

// NewMemoryRepositories creates in-memory concern, care, and bundle
// repositories for testing.
// Returns concernRepo, careRepo, bundleRepo, backend, and error.
// Caller must close the repos and backend when done.
func NewMemoryRepositories() (storage.ConcernRepository, storage.CareRepository, storage.BundleRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	concernRepo := NewConcernRepository(backend)
	careRepo := NewCareRepository(backend)
	bundleRepo := NewBundleRepository(backend)

	return concernRepo, careRepo, bundleRepo, backend, nil
}
