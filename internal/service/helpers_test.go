package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-progress-keeper/internal/clock"
	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/models"
)

const (
	testUserID = "user-1"
	testTodoID = "0192a4a8-6f3e-7c21-9d5b-3a1f6c2e8b01"
	testPageID = "0192a4a8-6f3e-7c21-9d5b-3a1f6c2e8b02"
)

// testNow is the mock clock's time: noon of 2026-10-15 in UTC.
var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestCalculator() *streak.Calculator {
	return streak.NewCalculator(clock.NewMock(testNow), time.UTC)
}

func newTestCodec(t *testing.T) *crypto.FieldCodec {
	t.Helper()
	codec, err := crypto.NewFieldCodec(config.App{EncryptionKey: "test-master-secret"}, logger.Nop())
	require.NoError(t, err)
	return codec
}

// day returns the start (04:00 UTC) of the given calendar day.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, streak.DayStartHour, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// storedDocument builds what the repository would hold for v: column values
// next to encrypted data.
func storedDocument(t *testing.T, codec crypto.Codec, fields models.FieldSet, contentKey string, v any, doc models.Document) models.Document {
	t.Helper()
	data, err := documentCodec{codec: codec, fields: fields, contentKey: contentKey}.encode(context.Background(), v, doc.UserID)
	require.NoError(t, err)
	doc.Data = data
	return doc
}

// progressRecorder is a ProgressService stub that records refreshed days.
type progressRecorder struct {
	ProgressService

	refreshed  []time.Time
	refreshErr error
}

func (p *progressRecorder) RefreshDay(_ context.Context, _ string, day time.Time) (models.CompletionHistoryEntry, error) {
	p.refreshed = append(p.refreshed, day)
	return models.CompletionHistoryEntry{}, p.refreshErr
}
