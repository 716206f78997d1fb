package service

import (
	"fmt"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/models"
)

type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	UserService     UserService
	TodoService     TodoService
	JournalService  JournalService
	PlannerService  PlannerService
	ProgressService ProgressService
}

// NewServices wires the business services. Writes go through validation
// decorators.
func NewServices(storages *store.Storages, codec crypto.Codec, calc *streak.Calculator, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	progressService := NewProgressService(storages, calc, logger)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfoService,
		UserService:     NewUserValidationService().Wrap(NewUserService(storages.UserRepository, codec, calc, logger)),
		TodoService:     NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, progressService, codec, calc, logger)),
		JournalService:  NewJournalValidationService().Wrap(NewJournalService(storages.JournalRepository, codec, calc, logger)),
		PlannerService:  NewPlannerValidationService().Wrap(NewPlannerService(storages.PlannerRepository, codec, logger)),
		ProgressService: progressService,
	}, nil
}
