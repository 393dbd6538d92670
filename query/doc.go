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


// Package query evaluates multi-field concern queries against derived
// indices.
//
// A query names personal traits, one context domain, and situational tags.
// The filter ANDs the three categories together and ORs within each; an
// empty category is a wildcard. Results are ordered by concern ID ascending
// so identical queries over identical catalogs always return identical
// output. No match is not an error.
package query
