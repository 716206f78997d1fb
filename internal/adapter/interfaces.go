// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the progress API.
//
// [ProgressClient] hides the transport from callers such as the CLI. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors in errors.go so
// that callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-progress-keeper/models"
)

// ProgressClient reads a user's progress from the server. The bearer token
// is fixed when the client is built.
type ProgressClient interface {
	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	// Progress returns the dashboard: day number, today's entry, streak and
	// countdown to the next day.
	Progress(ctx context.Context) (models.Progress, error)

	// Streak returns the current and longest streak.
	Streak(ctx context.Context) (models.StreakResult, error)

	// Todos returns the todos of day. A zero day means the server's today.
	Todos(ctx context.Context, day time.Time) ([]models.Todo, error)
}
