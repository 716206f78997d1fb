package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// completionRepository is the PostgreSQL-backed [CompletionRepository]. The
// day column stores the adjusted start of day (04:00 local) as timestamptz.
type completionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCompletionRepository constructs a [CompletionRepository] backed by db.
func NewCompletionRepository(db *DB, logger *logger.Logger) CompletionRepository {
	logger.Debug().Msg("creating completion history repository")
	return &completionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *completionRepository) Upsert(ctx context.Context, entry models.CompletionHistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCompletionQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*completionRepository.Upsert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return mapWriteError(err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*completionRepository.Upsert").Msg("error upserting completion entry")
		return err
	}

	return nil
}

func (r *completionRepository) Get(ctx context.Context, userID string, day time.Time) (models.CompletionHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCompletionQuery(userID, day)
	if err != nil {
		return models.CompletionHistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.CompletionHistoryEntry
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		entry, err = scanCompletion(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*completionRepository.Get").Msg("error getting completion entry")
		}
		return models.CompletionHistoryEntry{}, err
	}

	return entry, nil
}

func (r *completionRepository) List(ctx context.Context, userID string, from, to *time.Time) ([]models.CompletionHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCompletionQuery(userID, from, to)
	if err != nil {
		log.Err(err).Str("func", "*completionRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.CompletionHistoryEntry
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		entries, err = r.queryEntries(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*completionRepository.List").Msg("error listing completion history")
		return nil, err
	}

	return entries, nil
}

func (r *completionRepository) FillMissingDay(ctx context.Context, day time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFillMissingDayQuery(day)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var inserted int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		inserted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*completionRepository.FillMissingDay").Msg("error filling missing day")
		return 0, err
	}

	return inserted, nil
}

func (r *completionRepository) queryEntries(ctx context.Context, query string, args []any) ([]models.CompletionHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CompletionHistoryEntry, 0)
	for rows.Next() {
		entry, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func scanCompletion(row rowScanner) (models.CompletionHistoryEntry, error) {
	var entry models.CompletionHistoryEntry

	err := row.Scan(
		&entry.UserID,
		&entry.Date,
		&entry.Completed,
		&entry.CompletedTodos,
		&entry.TotalTodos,
		&entry.TotalScore,
		&entry.PossibleScore,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.CompletionHistoryEntry{}, ErrNotFound
	case err != nil:
		return models.CompletionHistoryEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}
