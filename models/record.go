// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Record is the loosely typed, document-shaped view of a model. It is the
// unit the field codec operates on and the value stored in JSONB columns.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = v
	}

	return clone
}

// ToRecord converts a JSON-serialisable value into a [Record] using its JSON
// field names as keys.
func ToRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error marshaling value to record: %w", err)
	}

	var rec Record
	if err = json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("error unmarshaling value to record: %w", err)
	}

	return rec, nil
}

// FromRecord fills target (a pointer) from rec, the inverse of [ToRecord].
func FromRecord(rec Record, target any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("error marshaling record: %w", err)
	}

	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("error unmarshaling record into %T: %w", target, err)
	}

	return nil
}
