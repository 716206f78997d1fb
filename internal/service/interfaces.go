package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-progress-keeper/models"
)

// AuthService verifies bearer tokens issued by the external identity
// provider. Tokens are never issued here.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// UserService manages the locally stored profile. Display name and goal are
// encrypted before they reach storage and decrypted on the way out.
type UserService interface {
	EnsureUser(ctx context.Context, userID string) (models.User, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	SetStartDate(ctx context.Context, userID string, start time.Time) (models.User, error)
}

// TodoService manages daily todos. Every mutation refreshes the completion
// entry of the affected day.
type TodoService interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	ListTodos(ctx context.Context, userID string, day time.Time) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	SetCompleted(ctx context.Context, userID, id string, completed bool) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, id string) error
}

// JournalService keeps at most one journal entry per user and day.
type JournalService interface {
	SaveEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	GetEntry(ctx context.Context, userID string, day time.Time) (models.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, from, to *time.Time) ([]models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID string, day time.Time) error
}

// PlannerService manages the hierarchical planner pages.
type PlannerService interface {
	CreatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error)
	GetPage(ctx context.Context, userID, id string) (models.PlannerPage, error)
	// ListPages returns the children of parentID, or the root pages when
	// parentID is nil.
	ListPages(ctx context.Context, userID string, parentID *string) ([]models.PlannerPage, error)
	UpdatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error)
	// DeletePage removes the page and all of its descendants.
	DeletePage(ctx context.Context, userID, id string) error
}

// ProgressService maintains the completion history and derives the streak,
// day number and countdown from it.
type ProgressService interface {
	// RefreshDay recomputes the user's entry for day from that day's todos.
	RefreshDay(ctx context.Context, userID string, day time.Time) (models.CompletionHistoryEntry, error)
	// RecordDay stores a client-supplied entry as is.
	RecordDay(ctx context.Context, entry models.CompletionHistoryEntry) (models.CompletionHistoryEntry, error)
	History(ctx context.Context, userID string, from, to *time.Time) ([]models.CompletionHistoryEntry, error)
	Streak(ctx context.Context, userID string) (models.StreakResult, error)
	Progress(ctx context.Context, userID string) (models.Progress, error)
	// CloseDay marks day as not completed for every user without an entry
	// and returns how many entries were added.
	CloseDay(ctx context.Context, day time.Time) (int64, error)
}

// TodoServiceWrapper decorates a TodoService, e.g. with validation.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

// JournalServiceWrapper decorates a JournalService.
type JournalServiceWrapper interface {
	Wrap(JournalService) JournalService
}

// PlannerServiceWrapper decorates a PlannerService.
type PlannerServiceWrapper interface {
	Wrap(PlannerService) PlannerService
}

// UserServiceWrapper decorates a UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
