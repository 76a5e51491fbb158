package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acme-store/internal/config"
	"github.com/MKhiriev/acme-store/internal/handler"
	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/server"
	"github.com/MKhiriev/acme-store/internal/service"
	"github.com/MKhiriev/acme-store/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("acme-store")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	defer db.Close()

	if cfg.App.SeedDemoData {
		// drop and recreate everything, then load the demo fixtures
		if err := db.ResetSchema(); err != nil {
			log.Fatal().Err(err).Msg("error resetting schema")
		}
	} else {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, log)

	if cfg.App.SeedDemoData {
		if err := seedDemoData(ctx, services, log); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo data")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
