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


// Package index derives inverted lookup indices over a loaded concern
// collection.
//
// Three indices are built: trait type -> concern IDs, domain -> concern IDs,
// and "<domain>:<situation>" -> concern IDs, plus the universe ID set used
// as the wildcard match set by the query filter.
//
// Indices are pure derived data: building never fails, mutates nothing, and
// the result may be shared read-only across concurrent callers for the
// lifetime of one loaded catalog.
package index
