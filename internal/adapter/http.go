package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

type httpProgressClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPProgressClient builds a [ProgressClient] over resty. The address
// may omit the scheme, in which case http is assumed.
func NewHTTPProgressClient(cfg config.ClientAdapter, logger *logger.Logger) (ProgressClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.Token != "" {
		client.WithBearerToken(cfg.Token)
	}

	return &httpProgressClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpProgressClient) Version(ctx context.Context) (string, error) {
	var version struct {
		Version string `json:"version"`
	}
	if err := h.get(ctx, "/api/version", nil, &version); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpProgressClient) Progress(ctx context.Context) (models.Progress, error) {
	var progress models.Progress
	if err := h.get(ctx, "/api/progress", nil, &progress); err != nil {
		return models.Progress{}, err
	}

	return progress, nil
}

func (h *httpProgressClient) Streak(ctx context.Context) (models.StreakResult, error) {
	var result models.StreakResult
	if err := h.get(ctx, "/api/progress/streak", nil, &result); err != nil {
		return models.StreakResult{}, err
	}

	return result, nil
}

func (h *httpProgressClient) Todos(ctx context.Context, day time.Time) ([]models.Todo, error) {
	var query map[string]string
	if !day.IsZero() {
		query = map[string]string{"day": streak.FormatDay(day)}
	}

	var todos []models.Todo
	if err := h.get(ctx, "/api/todos", query, &todos); err != nil {
		return nil, err
	}

	return todos, nil
}

func (h *httpProgressClient) get(ctx context.Context, path string, query map[string]string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(result).
		Get(path)
	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("request failed")
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}
