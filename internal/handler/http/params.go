package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-progress-keeper/internal/service"
)

// dayParam parses a YYYY-MM-DD value into its adjusted day. An empty value
// yields the zero time.
func (h *Handler) dayParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	day, err := h.calc.ParseDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayParameter, value)
	}

	return day, nil
}

// rangeParams reads the optional "from" and "to" query parameters.
func (h *Handler) rangeParams(r *http.Request) (from, to *time.Time, err error) {
	query := r.URL.Query()

	if from, err = h.optionalDay(query.Get("from")); err != nil {
		return nil, nil, err
	}
	if to, err = h.optionalDay(query.Get("to")); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, ErrInvalidRange
	}

	return from, to, nil
}

func (h *Handler) optionalDay(value string) (*time.Time, error) {
	day, err := h.dayParam(value)
	if err != nil || day.IsZero() {
		return nil, err
	}

	return &day, nil
}

// pathDay reads the required {day} URL parameter.
func (h *Handler) pathDay(r *http.Request) (time.Time, error) {
	value := chi.URLParam(r, "day")
	if value == "" {
		return time.Time{}, ErrInvalidDayParameter
	}

	return h.dayParam(value)
}

// withInvalidData marks a body decoding failure as a client error.
func withInvalidData(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
