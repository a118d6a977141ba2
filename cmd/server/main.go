package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-climate-intel/internal/adapter/kafka"
	"github.com/MKhiriev/go-climate-intel/internal/adapter/llm"
	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/handler"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/observability"
	"github.com/MKhiriev/go-climate-intel/internal/server"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/internal/store"
	"github.com/MKhiriev/go-climate-intel/internal/workers"
	"github.com/MKhiriev/go-climate-intel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("climate-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("climate-server", cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeWithLog(log, "storages", storages.Close)

	var publisher interface {
		service.AssessmentPublisher
		Close() error
	} = kafka.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Kafka, log)
	}
	defer closeWithLog(log, "publisher", publisher.Close)

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	services, err := service.NewServices(service.Dependencies{
		Storages:    storages,
		Publisher:   publisher,
		Completions: llm.NewClient(cfg.LLM, log),
		Metrics:     metrics,
		Clock:       clock,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(
		workers.NewOTPCleanupWorker(services.AuthService, cfg.Workers.OTPCleanupInterval, clock, metrics, log),
	)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", name).Msg("error closing resource")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
