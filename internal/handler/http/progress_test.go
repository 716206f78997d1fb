package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgress(t *testing.T) {
	want := models.Progress{
		DayNumber:  12,
		Today:      models.CompletionHistoryEntry{Date: day(2026, 10, 15), Completed: true, CompletedTodos: 1, TotalTodos: 2, TotalScore: 3, PossibleScore: 4},
		Percentage: 75,
		Streak:     models.StreakResult{CurrentStreak: 4, LongestStreak: 9},
		Countdown:  models.Countdown{Hours: 16, TotalMilliseconds: 16 * 3600 * 1000},
	}
	h := newTestHandlerWith(t, &service.Services{
		ProgressService: &mockProgressService{
			progressFn: func(_ context.Context, userID string) (models.Progress, error) {
				assert.Equal(t, testUserID, userID)
				return want, nil
			},
		},
	})

	rec := serve(t, h, http.MethodGet, "/api/progress", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 12, got.DayNumber)
	assert.Equal(t, 75.0, got.Percentage)
	assert.Equal(t, want.Streak, got.Streak)
	assert.Equal(t, want.Countdown, got.Countdown)
}

func TestGetHistory_PassesRange(t *testing.T) {
	h := newTestHandlerWith(t, &service.Services{
		ProgressService: &mockProgressService{
			historyFn: func(_ context.Context, _ string, from, to *time.Time) ([]models.CompletionHistoryEntry, error) {
				require.NotNil(t, from)
				assert.Nil(t, to)
				assert.True(t, day(2026, 9, 1).Equal(*from))
				return []models.CompletionHistoryEntry{{Date: day(2026, 9, 2), Completed: true}}, nil
			},
		},
	})

	rec := serve(t, h, http.MethodGet, "/api/progress/history?from=2026-09-01", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed":true`)
}

func TestRecordDay(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "recorded", wantStatus: http.StatusOK},
		{name: "rejected", err: fmt.Errorf("%w: day is in the future", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWith(t, &service.Services{
				ProgressService: &mockProgressService{
					recordDayFn: func(_ context.Context, entry models.CompletionHistoryEntry) (models.CompletionHistoryEntry, error) {
						assert.Equal(t, testUserID, entry.UserID)
						return entry, tt.err
					},
				},
			})

			body := `{"date":"2026-10-14T04:00:00Z","completed":true,"completedTodos":1,"totalTodos":1}`
			rec := serve(t, h, http.MethodPost, "/api/progress/history", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
