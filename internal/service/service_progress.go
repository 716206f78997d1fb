package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/internal/validators"
	"github.com/MKhiriev/go-progress-keeper/models"
)

type progressService struct {
	completionRepository store.CompletionRepository
	todoRepository       store.DocumentRepository
	userRepository       store.UserRepository
	calc                 *streak.Calculator
	validator            validators.Validator

	logger *logger.Logger
}

func NewProgressService(storages *store.Storages, calc *streak.Calculator, logger *logger.Logger) ProgressService {
	return &progressService{
		completionRepository: storages.CompletionRepository,
		todoRepository:       storages.TodoRepository,
		userRepository:       storages.UserRepository,
		calc:                 calc,
		validator:            validators.NewProgressValidator(),
		logger:               logger,
	}
}

// RefreshDay summarises the todos of day. Only the clear-text completion
// flag and points are read, so no decryption happens here.
func (s *progressService) RefreshDay(ctx context.Context, userID string, day time.Time) (models.CompletionHistoryEntry, error) {
	log := logger.FromContext(ctx)

	day = s.calc.DayOf(day)
	docs, err := s.todoRepository.List(ctx, models.DocumentFilter{UserID: userID, From: &day, To: &day})
	if err != nil {
		return models.CompletionHistoryEntry{}, fmt.Errorf("error listing todos of the day: %w", err)
	}

	entry := models.CompletionHistoryEntry{UserID: userID, Date: day}
	for _, doc := range docs {
		var todo models.Todo
		if err = models.FromRecord(doc.Data, &todo); err != nil {
			log.Warn().Err(err).Str("todo_id", doc.ID).Msg("skipping undecodable todo")
			continue
		}

		entry.TotalTodos++
		entry.PossibleScore += todo.Points
		if todo.Completed {
			entry.CompletedTodos++
			entry.TotalScore += todo.Points
		}
	}
	entry.Completed = entry.CompletedTodos > 0

	if err = s.completionRepository.Upsert(ctx, entry); err != nil {
		log.Err(err).Str("func", "*progressService.RefreshDay").Msg("error storing completion entry")
		return models.CompletionHistoryEntry{}, fmt.Errorf("error storing completion entry: %w", err)
	}

	return entry, nil
}

func (s *progressService) RecordDay(ctx context.Context, entry models.CompletionHistoryEntry) (models.CompletionHistoryEntry, error) {
	if !entry.Date.IsZero() {
		entry.Date = s.calc.DayOf(entry.Date)
	}
	if err := s.validator.Validate(ctx, entry); err != nil {
		return models.CompletionHistoryEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if entry.Date.After(s.calc.Today()) {
		return models.CompletionHistoryEntry{}, fmt.Errorf("%w: day is in the future", ErrInvalidDataProvided)
	}

	if err := s.completionRepository.Upsert(ctx, entry); err != nil {
		return models.CompletionHistoryEntry{}, fmt.Errorf("error recording day: %w", err)
	}

	return entry, nil
}

func (s *progressService) History(ctx context.Context, userID string, from, to *time.Time) ([]models.CompletionHistoryEntry, error) {
	from, to = s.dayBounds(from), s.dayBounds(to)

	entries, err := s.completionRepository.List(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing completion history: %w", err)
	}

	return entries, nil
}

func (s *progressService) Streak(ctx context.Context, userID string) (models.StreakResult, error) {
	start, err := s.startDate(ctx, userID)
	if err != nil {
		return models.StreakResult{}, err
	}

	history, err := s.completionRepository.List(ctx, userID, nil, nil)
	if err != nil {
		return models.StreakResult{}, fmt.Errorf("error listing completion history: %w", err)
	}

	return s.calc.Streak(history, start), nil
}

// Progress assembles the dashboard. A day without an entry yet is reported
// as an empty entry for today.
func (s *progressService) Progress(ctx context.Context, userID string) (models.Progress, error) {
	start, err := s.startDate(ctx, userID)
	if err != nil {
		return models.Progress{}, err
	}

	history, err := s.completionRepository.List(ctx, userID, nil, nil)
	if err != nil {
		return models.Progress{}, fmt.Errorf("error listing completion history: %w", err)
	}

	today := s.calc.Today()
	todayEntry := models.CompletionHistoryEntry{UserID: userID, Date: today}
	for _, e := range history {
		if s.calc.DayOf(e.Date).Equal(today) {
			todayEntry = e
			break
		}
	}

	return models.Progress{
		DayNumber:  s.calc.DayNumber(start),
		Today:      todayEntry,
		Percentage: todayEntry.Percentage(),
		Streak:     s.calc.Streak(history, start),
		Countdown:  s.calc.Countdown(),
	}, nil
}

func (s *progressService) CloseDay(ctx context.Context, day time.Time) (int64, error) {
	day = s.calc.DayOf(day)

	inserted, err := s.completionRepository.FillMissingDay(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("error closing day %s: %w", streak.FormatDay(day), err)
	}

	logger.FromContext(ctx).Info().
		Str("day", streak.FormatDay(day)).
		Int64("missing_entries", inserted).
		Msg("day closed")

	return inserted, nil
}

// startDate returns the user's journey start, or nil when the user has no
// profile or no start date yet.
func (s *progressService) startDate(ctx context.Context, userID string) (*time.Time, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user.StartDate, nil
}

func (s *progressService) dayBounds(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	day := s.calc.DayOf(*t)
	return &day
}
