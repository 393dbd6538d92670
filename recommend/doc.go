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


// Package recommend scores and orders care options against a user preference.
//
// The Ranker type implements a weighted multi-criteria model over nine axes:
//   - Ordinal tags (cost, difficulty, expertise, psychological ease) mapped
//     to fixed scores
//   - Categorical tags (legal basis, effect type) mapped to fixed scores
//   - Numeric tags (lead time, upkeep, stakeholders) on inverse-linear scales
//
// Missing tags score a neutral 0.5 rather than being treated as failures.
// User-set hard limits penalize violating options instead of dropping them,
// so every input option appears in the output. Each result carries display
// badges and a short human-readable justification.
package recommend
