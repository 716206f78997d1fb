package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-progress-keeper/internal/clock"
	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/handler"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/server"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/internal/workers"
	"github.com/MKhiriev/go-progress-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_, _ = buildInfo.WriteTo(os.Stdout)

	log := logger.NewLogger("progress-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("timezone", cfg.App.Timezone).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("rollover_disabled", cfg.Workers.DisableRollover).
		Msg("received configs")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading timezone")
	}
	calc := streak.NewCalculator(clock.Real{}, loc)

	codec, err := crypto.NewFieldCodec(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field codec")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, codec, calc, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, calc, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(services, calc, cfg.Workers, log).Run(ctx)
		close(workersDone)
	}()

	srv.RunServer()

	stop()
	<-workersDone
}
