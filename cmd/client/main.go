package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/capability"
	"github.com/MKhiriev/go-climate-intel/internal/client"
	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/service"
	"github.com/MKhiriev/go-climate-intel/internal/store"
	"github.com/MKhiriev/go-climate-intel/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("climate-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("climate-client", cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, tui.Options{
		BuildInfo:       buildInfo,
		Capabilities:    capability.Detect(),
		RefreshInterval: cfg.Workers.RefreshInterval,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log, localStorage.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
