package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Display name and goal arrive already encrypted; the repository stores them
// verbatim.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureUser returns the user row, creating it on first sight. It runs on
// every authenticated request, so a known user costs a single SELECT and no
// write. The insert uses DO NOTHING; when a concurrent request wins the race
// the insert returns no row and the row is read again.
func (r *userRepository) EnsureUser(ctx context.Context, userID string) (models.User, error) {
	user, err := r.GetUser(ctx, userID)
	if !errors.Is(err, ErrNotFound) {
		return user, err
	}

	user, err = r.insertUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return r.GetUser(ctx, userID)
	}

	return user, err
}

func (r *userRepository) insertUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEnsureUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.insertUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		user, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.insertUser").Msg("error creating user")
		}
		return models.User{}, err
	}

	log.Info().Msg("user created")
	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		user, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.GetUser").Msg("error getting user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		startDate sql.NullTime
	)

	err := row.Scan(&user.UserID, &user.DisplayName, &user.Goal, &startDate, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNotFound
	case err != nil:
		if postgresError(err) != "" {
			return models.User{}, mapWriteError(err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if startDate.Valid {
		user.StartDate = &startDate.Time
	}

	return user, nil
}
