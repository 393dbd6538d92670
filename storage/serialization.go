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


package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/poiesic/carena/core"
)

// Values are stored as JSON: the catalog's interchange format is JSON and
// the record shapes are its schema, so the stored bytes stay inspectable
// with badger's tooling.

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: id must be 8 bytes, got %d", ErrSerializationFailed, len(data))
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}

// MarshalConcern serializes a Concern to bytes.
func MarshalConcern(concern *core.Concern) ([]byte, error) {
	data, err := json.Marshal(concern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalConcern deserializes a Concern from bytes.
func UnmarshalConcern(data []byte) (*core.Concern, error) {
	var concern core.Concern
	if err := json.Unmarshal(data, &concern); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &concern, nil
}

// MarshalCare serializes a Care to bytes.
func MarshalCare(care *core.Care) ([]byte, error) {
	data, err := json.Marshal(care)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalCare deserializes a Care from bytes.
func UnmarshalCare(data []byte) (*core.Care, error) {
	var care core.Care
	if err := json.Unmarshal(data, &care); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &care, nil
}

// MarshalVariant serializes a CareVariant to bytes.
func MarshalVariant(variant *core.CareVariant) ([]byte, error) {
	data, err := json.Marshal(variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalVariant deserializes a CareVariant from bytes.
func UnmarshalVariant(data []byte) (*core.CareVariant, error) {
	var variant core.CareVariant
	if err := json.Unmarshal(data, &variant); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &variant, nil
}

// MarshalBundle serializes a Bundle to bytes.
func MarshalBundle(bundle *core.Bundle) ([]byte, error) {
	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalBundle deserializes a Bundle from bytes.
func UnmarshalBundle(data []byte) (*core.Bundle, error) {
	var bundle core.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &bundle, nil
}
