package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-progress-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user profiles. Users are created lazily the first
// time a verified token for them is seen.
type UserRepository interface {
	// EnsureUser inserts the user if absent and returns the stored profile.
	EnsureUser(ctx context.Context, userID string) (models.User, error)
	// GetUser returns the profile or [ErrNotFound].
	GetUser(ctx context.Context, userID string) (models.User, error)
	// UpdateUser overwrites display name, goal and start date.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// DocumentRepository persists JSONB documents (todos, journal entries,
// planner pages) of one table. Every method is scoped to the owning user.
type DocumentRepository interface {
	// Create inserts doc, assigning an id when it has none.
	Create(ctx context.Context, doc models.Document) (models.Document, error)
	// Get returns the document or [ErrNotFound].
	Get(ctx context.Context, userID, id string) (models.Document, error)
	// List returns the documents matching filter ordered by day and
	// creation time.
	List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	// Update replaces day, parent and data of an existing document.
	Update(ctx context.Context, doc models.Document) (models.Document, error)
	// Delete removes the document or returns [ErrNotFound].
	Delete(ctx context.Context, userID, id string) error
}

// CompletionRepository persists one completion history entry per user and
// adjusted day.
type CompletionRepository interface {
	// Upsert inserts or replaces the entry for (entry.UserID, entry.Date).
	Upsert(ctx context.Context, entry models.CompletionHistoryEntry) error
	// Get returns the entry of one day or [ErrNotFound].
	Get(ctx context.Context, userID string, day time.Time) (models.CompletionHistoryEntry, error)
	// List returns entries in [from, to], newest first. Nil bounds are open.
	List(ctx context.Context, userID string, from, to *time.Time) ([]models.CompletionHistoryEntry, error)
	// FillMissingDay records day as not completed for every user that has
	// no entry for it and returns the number of inserted rows.
	FillMissingDay(ctx context.Context, day time.Time) (int64, error)
}
