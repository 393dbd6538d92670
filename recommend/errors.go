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


package recommend

import "errors"

var (
	// ErrUnknownCriterion indicates a weight override names a criterion
	// outside the scored set.
	ErrUnknownCriterion = errors.New("unknown criterion")

	// ErrInvalidWeight indicates a weight override is negative, NaN, or
	// infinite.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrZeroWeightSum indicates the resolved weights sum to zero, leaving
	// nothing to normalize against.
	ErrZeroWeightSum = errors.New("weights sum to zero")

	// ErrInvalidHardLimit indicates a hard limit carries a value outside its
	// ordinal scale.
	ErrInvalidHardLimit = errors.New("invalid hard limit")
)
