package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-interview-prep/internal/adapter"
	"github.com/MKhiriev/go-interview-prep/internal/config"
	"github.com/MKhiriev/go-interview-prep/internal/handler"
	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/server"
	"github.com/MKhiriev/go-interview-prep/internal/service"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/workers"
	"github.com/MKhiriev/go-interview-prep/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("interview-prep-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("questions_dir", cfg.Storage.Files.QuestionsDir).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	summarizer, err := adapter.NewSummarizer(cfg.Adapter.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating summarizer")
	}

	services := service.NewServices(storages, service.Adapters{
		TextExtractor: adapter.NewPDFTextExtractor(log),
		Summarizer:    summarizer,
	}, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(services, cfg.Workers, log)
	jobs.Run(ctx)
	defer jobs.Stop()

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
