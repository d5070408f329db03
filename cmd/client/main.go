package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lingo/internal/adapter"
	"github.com/MKhiriev/go-lingo/internal/client"
	"github.com/MKhiriev/go-lingo/internal/config"
	"github.com/MKhiriev/go-lingo/internal/logger"
	"github.com/MKhiriev/go-lingo/internal/service"
	"github.com/MKhiriev/go-lingo/internal/store"
	"github.com/MKhiriev/go-lingo/internal/tui"
	"github.com/MKhiriev/go-lingo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog := logger.NewLogger("go-lingo-client")
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-lingo-client", cfg.App.LogFile)
	defer log.Close()

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, localStorage.Credentials, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewClientServices(cfg, buildInfo, localStorage, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
