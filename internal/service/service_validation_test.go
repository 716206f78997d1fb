package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-progress-keeper/internal/validators"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// ─────────────────────────────────────────────
// Inner service stubs
// ─────────────────────────────────────────────

type innerTodoService struct {
	TodoService
	calls int
}

func (s *innerTodoService) CreateTodo(_ context.Context, todo models.Todo) (models.Todo, error) {
	s.calls++
	return todo, nil
}

func (s *innerTodoService) UpdateTodo(_ context.Context, todo models.Todo) (models.Todo, error) {
	s.calls++
	return todo, nil
}

func (s *innerTodoService) SetCompleted(_ context.Context, userID, id string, completed bool) (models.Todo, error) {
	s.calls++
	return models.Todo{ID: id, UserID: userID, Completed: completed}, nil
}

func (s *innerTodoService) DeleteTodo(context.Context, string, string) error {
	s.calls++
	return nil
}

type innerJournalService struct {
	JournalService
	calls int
}

func (s *innerJournalService) SaveEntry(_ context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	s.calls++
	return entry, nil
}

func (s *innerJournalService) ListEntries(context.Context, string, *time.Time, *time.Time) ([]models.JournalEntry, error) {
	s.calls++
	return nil, nil
}

type innerPlannerService struct {
	PlannerService
	calls int
}

func (s *innerPlannerService) CreatePage(_ context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	s.calls++
	return page, nil
}

func (s *innerPlannerService) UpdatePage(_ context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	s.calls++
	return page, nil
}

func (s *innerPlannerService) DeletePage(context.Context, string, string) error {
	s.calls++
	return nil
}

type innerUserService struct {
	UserService
	calls int
}

func (s *innerUserService) UpdateProfile(_ context.Context, user models.User) (models.User, error) {
	s.calls++
	return user, nil
}

func (s *innerUserService) SetStartDate(_ context.Context, userID string, start time.Time) (models.User, error) {
	s.calls++
	return models.User{UserID: userID, StartDate: &start}, nil
}

// ─────────────────────────────────────────────
// Todo
// ─────────────────────────────────────────────

func TestTodoValidationService_CreateTodo(t *testing.T) {
	tests := []struct {
		name    string
		todo    models.Todo
		wantErr error
	}{
		{name: "valid without day", todo: models.Todo{UserID: testUserID, Title: "Run", Points: 1}},
		{name: "empty title", todo: models.Todo{UserID: testUserID}, wantErr: validators.ErrEmptyTitle},
		{name: "missing owner", todo: models.Todo{Title: "Run"}, wantErr: validators.ErrInvalidUserID},
		{name: "negative points", todo: models.Todo{UserID: testUserID, Title: "Run", Points: -1}, wantErr: validators.ErrInvalidPoints},
		{name: "long category", todo: models.Todo{UserID: testUserID, Title: "Run", Category: strings.Repeat("c", 101)}, wantErr: validators.ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &innerTodoService{}
			svc := NewTodoValidationService().Wrap(inner)

			_, err := svc.CreateTodo(context.Background(), tt.todo)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, 1, inner.calls)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, inner.calls)
		})
	}
}

func TestTodoValidationService_RequiresUUID(t *testing.T) {
	inner := &innerTodoService{}
	svc := NewTodoValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.UpdateTodo(ctx, models.Todo{ID: "not-a-uuid", UserID: testUserID, Title: "Run"})
	assert.ErrorIs(t, err, validators.ErrInvalidID)

	_, err = svc.SetCompleted(ctx, testUserID, "", true)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.DeleteTodo(ctx, "", testTodoID)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	assert.Zero(t, inner.calls)

	todo, err := svc.SetCompleted(ctx, testUserID, testTodoID, true)
	require.NoError(t, err)
	assert.True(t, todo.Completed)
	assert.Equal(t, 1, inner.calls)
}

// ─────────────────────────────────────────────
// Journal
// ─────────────────────────────────────────────

func TestJournalValidationService_SaveEntry(t *testing.T) {
	inner := &innerJournalService{}
	svc := NewJournalValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.SaveEntry(ctx, models.JournalEntry{UserID: testUserID, Content: "ok", Mood: "ecstatic"})
	assert.ErrorIs(t, err, validators.ErrInvalidMood)

	_, err = svc.SaveEntry(ctx, models.JournalEntry{UserID: testUserID, Content: strings.Repeat("x", 20001)})
	assert.ErrorIs(t, err, validators.ErrTextTooLong)
	assert.Zero(t, inner.calls)

	_, err = svc.SaveEntry(ctx, models.JournalEntry{UserID: testUserID, Content: "ok", Mood: models.MoodGreat})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestJournalValidationService_ListEntries_InvertedRange(t *testing.T) {
	inner := &innerJournalService{}
	svc := NewJournalValidationService().Wrap(inner)
	from, to := day(2026, 10, 10), day(2026, 10, 1)

	_, err := svc.ListEntries(context.Background(), testUserID, &from, &to)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, inner.calls)

	_, err = svc.ListEntries(context.Background(), testUserID, &to, &from)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

// ─────────────────────────────────────────────
// Planner
// ─────────────────────────────────────────────

func TestPlannerValidationService(t *testing.T) {
	inner := &innerPlannerService{}
	svc := NewPlannerValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.CreatePage(ctx, models.PlannerPage{UserID: testUserID, Title: "x", Content: []models.ContentBlock{{Type: "video"}}})
	assert.ErrorIs(t, err, validators.ErrInvalidBlockType)

	_, err = svc.UpdatePage(ctx, models.PlannerPage{ID: testPageID, UserID: testUserID, Title: "x", ParentID: ptr(testPageID)})
	assert.ErrorIs(t, err, validators.ErrSelfParent)

	err = svc.DeletePage(ctx, testUserID, "nope")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, inner.calls)

	_, err = svc.CreatePage(ctx, models.PlannerPage{UserID: testUserID, Title: "Goals", Content: []models.ContentBlock{{Type: "paragraph", Content: "hi"}}})
	require.NoError(t, err)
	require.NoError(t, svc.DeletePage(ctx, testUserID, testPageID))
	assert.Equal(t, 2, inner.calls)
}

// ─────────────────────────────────────────────
// User
// ─────────────────────────────────────────────

func TestUserValidationService(t *testing.T) {
	inner := &innerUserService{}
	svc := NewUserValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, models.User{UserID: testUserID, Goal: strings.Repeat("g", 1001)})
	assert.ErrorIs(t, err, validators.ErrTextTooLong)

	_, err = svc.SetStartDate(ctx, testUserID, time.Now().AddDate(0, 1, 0))
	assert.ErrorIs(t, err, validators.ErrStartDateInFuture)
	assert.Zero(t, inner.calls)

	user, err := svc.SetStartDate(ctx, testUserID, day(2026, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.UserID)
	assert.Equal(t, 1, inner.calls)
}
