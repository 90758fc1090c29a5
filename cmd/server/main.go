package main

import (
	"fmt"
	"log"

	"commis/internal/config"
	"commis/internal/handler"
	"commis/internal/port"
	"commis/internal/repository/postgres"
	"commis/internal/router"
	"commis/internal/schema"
	"commis/internal/service"
	"commis/internal/storage/noop"
	s3storage "commis/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	recordRepo := postgres.NewRecordRepo(db)
	ingestionRepo := postgres.NewIngestionRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize the raw report archive
	var archive port.ObjectStorage
	switch cfg.Archive.Provider {
	case "s3":
		archive, err = s3storage.NewS3Client(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	default:
		archive = noop.New()
	}

	// Initialize services
	registry := schema.NewRegistry()
	ingestSvc := service.NewIngestService(registry, recordRepo, ingestionRepo, archive, cfg)
	recordSvc := service.NewRecordService(recordRepo, registry)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	ingestH := handler.NewIngestHandler(ingestSvc, cfg.Ingest.MaxFileSizeBytes())
	recordH := handler.NewRecordHandler(recordSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	exportH := handler.NewExportHandler(recordSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(ingestH, recordH, statsH, exportH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
