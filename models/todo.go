package models

import "time"

// Todo is a single tracked daily item. Title and Category are sensitive and
// are stored encrypted (see [EncryptedFields]).
type Todo struct {
	// ID is the server-assigned document identifier (UUID).
	ID string `json:"id,omitempty"`

	// UserID is the identity-provider subject owning the todo.
	UserID string `json:"userId,omitempty"`

	Title    string `json:"title"`
	Category string `json:"category,omitempty"`

	// Points is the score credited when the todo is completed.
	Points int `json:"points"`

	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Day is the adjusted day (04:00 local) the todo belongs to.
	Day time.Time `json:"day"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// CompletionUpdate is the body of a completion toggle request.
type CompletionUpdate struct {
	Completed bool `json:"completed"`
}
