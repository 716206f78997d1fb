package handler

import (
	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/handler/http"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
)

// Handlers groups the transports of the progress API. Only HTTP exists.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, calc *streak.Calculator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || calc == nil {
		return nil, errNoServicesToServe
	}

	return &Handlers{HTTP: http.NewHandler(services, calc, cfg, logger)}, nil
}
