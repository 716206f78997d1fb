package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/models"
)

type todoService struct {
	todoRepository  store.DocumentRepository
	progressService ProgressService
	documents       documentCodec
	calc            *streak.Calculator

	logger *logger.Logger
}

func NewTodoService(todoRepository store.DocumentRepository, progressService ProgressService, codec crypto.Codec, calc *streak.Calculator, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository:  todoRepository,
		progressService: progressService,
		documents:       documentCodec{codec: codec, fields: models.EncryptedFields.Todo},
		calc:            calc,
		logger:          logger,
	}
}

// CreateTodo stores a new todo for its day, today when none is given.
func (s *todoService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if todo.Day.IsZero() {
		todo.Day = s.calc.Today()
	} else {
		todo.Day = s.calc.DayOf(todo.Day)
	}
	todo.ID = ""
	todo.CompletedAt = s.completedAt(todo.Completed, nil)

	doc, err := s.toDocument(ctx, todo)
	if err != nil {
		return models.Todo{}, err
	}

	created, err := s.todoRepository.Create(ctx, doc)
	if err != nil {
		return models.Todo{}, fmt.Errorf("error creating todo: %w", err)
	}

	s.refresh(ctx, todo.UserID, todo.Day)

	return s.fromDocument(ctx, created)
}

func (s *todoService) ListTodos(ctx context.Context, userID string, day time.Time) ([]models.Todo, error) {
	day = s.calc.DayOf(day)

	docs, err := s.todoRepository.List(ctx, models.DocumentFilter{UserID: userID, From: &day, To: &day})
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}

	todos := make([]models.Todo, 0, len(docs))
	for _, doc := range docs {
		todo, err := s.fromDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

// UpdateTodo replaces title, category, points, completion and day of an
// existing todo. Moving a todo to another day refreshes both days.
func (s *todoService) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	existing, err := s.get(ctx, todo.UserID, todo.ID)
	if err != nil {
		return models.Todo{}, err
	}

	if todo.Day.IsZero() {
		todo.Day = existing.Day
	} else {
		todo.Day = s.calc.DayOf(todo.Day)
	}
	if todo.Completed == existing.Completed {
		todo.CompletedAt = existing.CompletedAt
	} else {
		todo.CompletedAt = s.completedAt(todo.Completed, existing.CompletedAt)
	}

	updated, err := s.update(ctx, todo)
	if err != nil {
		return models.Todo{}, err
	}

	s.refresh(ctx, todo.UserID, todo.Day)
	if !existing.Day.Equal(todo.Day) {
		s.refresh(ctx, todo.UserID, existing.Day)
	}

	return updated, nil
}

func (s *todoService) SetCompleted(ctx context.Context, userID, id string, completed bool) (models.Todo, error) {
	todo, err := s.get(ctx, userID, id)
	if err != nil {
		return models.Todo{}, err
	}

	if todo.Completed == completed {
		return todo, nil
	}

	todo.Completed = completed
	todo.CompletedAt = s.completedAt(completed, todo.CompletedAt)

	updated, err := s.update(ctx, todo)
	if err != nil {
		return models.Todo{}, err
	}

	s.refresh(ctx, userID, todo.Day)

	return updated, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, id string) error {
	todo, err := s.get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err = s.todoRepository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}

	s.refresh(ctx, userID, todo.Day)

	return nil
}

func (s *todoService) get(ctx context.Context, userID, id string) (models.Todo, error) {
	doc, err := s.todoRepository.Get(ctx, userID, id)
	if err != nil {
		return models.Todo{}, fmt.Errorf("error getting todo: %w", err)
	}

	return s.fromDocument(ctx, doc)
}

func (s *todoService) update(ctx context.Context, todo models.Todo) (models.Todo, error) {
	doc, err := s.toDocument(ctx, todo)
	if err != nil {
		return models.Todo{}, err
	}

	updated, err := s.todoRepository.Update(ctx, doc)
	if err != nil {
		return models.Todo{}, fmt.Errorf("error updating todo: %w", err)
	}

	return s.fromDocument(ctx, updated)
}

// refresh recomputes the day's completion entry. The todo itself is already
// stored, so a failure here is logged rather than returned.
func (s *todoService) refresh(ctx context.Context, userID string, day time.Time) {
	if _, err := s.progressService.RefreshDay(ctx, userID, day); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*todoService.refresh").
			Str("day", streak.FormatDay(day)).
			Msg("error refreshing completion entry")
	}
}

func (s *todoService) completedAt(completed bool, previous *time.Time) *time.Time {
	if !completed {
		return nil
	}
	if previous != nil {
		return previous
	}

	now := s.calc.Now()
	return &now
}

func (s *todoService) toDocument(ctx context.Context, todo models.Todo) (models.Document, error) {
	data, err := s.documents.encode(ctx, todo, todo.UserID)
	if err != nil {
		return models.Document{}, err
	}

	day := todo.Day
	return models.Document{ID: todo.ID, UserID: todo.UserID, Day: &day, Data: data}, nil
}

func (s *todoService) fromDocument(ctx context.Context, doc models.Document) (models.Todo, error) {
	var todo models.Todo
	if err := s.documents.decode(ctx, doc, &todo); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}
