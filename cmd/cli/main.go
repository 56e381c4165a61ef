package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/pricekeeper/internal/cli"
	"github.com/dmitrijs2005/pricekeeper/internal/config"
	"github.com/dmitrijs2005/pricekeeper/internal/logging"
	"github.com/dmitrijs2005/pricekeeper/internal/storage"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	app := cli.NewApp(cfg, logger, db)
	app.Run(ctx)

}
