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


// Package view joins filtered concerns with their bundled remedy options,
// scoped to one domain, producing an ordered view model for display.
//
// Bundle order defines the stable option labeling ("A", "B", "C") the UI
// shows. The assembler degrades gracefully: a concern without a bundle gets
// zero cards, a dangling care reference becomes a placeholder card, and a
// care without a domain-matching variant simply carries no detail text.
package view
