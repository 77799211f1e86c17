package main

import (
	"log"

	"github.com/joho/godotenv"

	"tablescrub/adapters/render"
	"tablescrub/internal"
	"tablescrub/internal/config"
	"tablescrub/internal/pipeline"
	"tablescrub/internal/upload"
	"tablescrub/ui"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()
	storage := upload.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.MaxUploadMB*1024*1024)
	runner := pipeline.NewRunner(logger,
		render.JSONRenderer{},
		render.TextRenderer{},
		render.MarkdownRenderer{},
		render.ExcelRenderer{},
	)

	server, err := ui.NewServer(cfg, logger, storage, runner)
	if err != nil {
		log.Fatalf("cannot initialize server: %v", err)
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
