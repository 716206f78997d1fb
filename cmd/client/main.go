package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/adapter"
	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const requestBudget = 30 * time.Second

func main() {
	log := logger.NewConsoleLogger("progress-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	client, err := adapter.NewHTTPProgressClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating progress client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestBudget)
	defer cancel()

	if err = printProgress(ctx, client); err != nil {
		log.Error().Err(err).Msg("error reading progress")
		os.Exit(1)
	}
}

func printProgress(ctx context.Context, client adapter.ProgressClient) error {
	serverVersion, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("error getting server version: %w", err)
	}

	progress, err := client.Progress(ctx)
	if err != nil {
		return fmt.Errorf("error getting progress: %w", err)
	}

	todos, err := client.Todos(ctx, time.Time{})
	if err != nil {
		return fmt.Errorf("error getting todos: %w", err)
	}

	fmt.Printf("Client %s (%s, %s), server %s\n\n", orNA(buildVersion), orNA(buildDate), orNA(buildCommit), serverVersion)
	fmt.Printf("Day %d, %s\n", progress.DayNumber, streak.FormatDay(progress.Today.Date))
	fmt.Printf("Streak: %d (longest %d)\n", progress.Streak.CurrentStreak, progress.Streak.LongestStreak)
	fmt.Printf("Today: %d/%d todos, %.0f%% of points\n", progress.Today.CompletedTodos, progress.Today.TotalTodos, progress.Percentage)
	fmt.Printf("Next day in %dh %02dm\n", progress.Countdown.Hours, progress.Countdown.Minutes)

	for _, todo := range todos {
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %s (%d)\n", mark, todo.Title, todo.Points)
	}

	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
