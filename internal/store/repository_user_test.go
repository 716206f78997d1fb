package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/models"
)

func TestUserRepository_EnsureUser(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 5, 1, 4, 0, 0, 0, time.UTC)

	selectUser := regexp.QuoteMeta("SELECT user_id, display_name, goal, start_date, created_at FROM users WHERE user_id = $1")
	insertUser := regexp.QuoteMeta("INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING RETURNING")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.User
		wantErr error
	}{
		{
			name: "existing user is read without a write",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "enc:v1:n", "enc:v1:g", start, created))
			},
			want: models.User{UserID: "u1", DisplayName: "enc:v1:n", Goal: "enc:v1:g", StartDate: &start, CreatedAt: created},
		},
		{
			name: "new user is inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).WithArgs("u1").WillReturnRows(sqlmock.NewRows(userColumns))
				mock.ExpectQuery(insertUser).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "", "", nil, created))
			},
			want: models.User{UserID: "u1", CreatedAt: created},
		},
		{
			name: "concurrent insert wins the race",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).WithArgs("u1").WillReturnRows(sqlmock.NewRows(userColumns))
				mock.ExpectQuery(insertUser).WithArgs("u1").WillReturnRows(sqlmock.NewRows(userColumns))
				mock.ExpectQuery(selectUser).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "", "", nil, created))
			},
			want: models.User{UserID: "u1", CreatedAt: created},
		},
		{
			name: "transient insert error is retried",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).WithArgs("u1").WillReturnRows(sqlmock.NewRows(userColumns))
				mock.ExpectQuery(insertUser).
					WithArgs("u1").
					WillReturnError(pgError(pgerrcode.SerializationFailure))
				mock.ExpectQuery(insertUser).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "", "", nil, created))
			},
			want: models.User{UserID: "u1", CreatedAt: created},
		},
		{
			name: "permanent select error stops before the insert",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).
					WithArgs("u1").
					WillReturnError(pgError(pgerrcode.SyntaxError))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			repo := NewUserRepository(db, logger.Nop())
			got, err := repo.EnsureUser(context.Background(), "u1")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserRepository_GetUser_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, display_name, goal, start_date, created_at FROM users WHERE user_id = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	repo := NewUserRepository(db, logger.Nop())
	_, err := repo.GetUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 5, 2, 4, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
			WithArgs("enc:v1:n", "enc:v1:g", start, "u1").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "enc:v1:n", "enc:v1:g", start, created))

		repo := NewUserRepository(db, logger.Nop())
		got, err := repo.UpdateUser(context.Background(), models.User{UserID: "u1", DisplayName: "enc:v1:n", Goal: "enc:v1:g", StartDate: &start})

		require.NoError(t, err)
		require.NotNil(t, got.StartDate)
		assert.True(t, got.StartDate.Equal(start))
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
			WillReturnRows(sqlmock.NewRows(userColumns))

		repo := NewUserRepository(db, logger.Nop())
		_, err := repo.UpdateUser(context.Background(), models.User{UserID: "ghost"})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
