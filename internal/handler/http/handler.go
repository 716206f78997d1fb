package http

import (
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	calc     *streak.Calculator
	// newTraceID mints ids for requests arriving without a valid X-Trace-ID.
	newTraceID func() string

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, calc *streak.Calculator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		calc:           calc,
		newTraceID:     utils.NewID,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
