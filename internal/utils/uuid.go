package utils

import "github.com/google/uuid"

// NewID returns a UUIDv7 for records and trace ids. Version 7 sorts by
// creation time, which keeps the primary key indexes append-only. A random
// v4 is returned if the clock sequence cannot be read.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsID reports whether s parses as a UUID of any version.
func IsID(s string) bool {
	return uuid.Validate(s) == nil
}
