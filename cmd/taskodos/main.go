package main

import (
	"log"

	"github.com/taskodos/taskodos/api"
	"github.com/taskodos/taskodos/pkg/config"
	"github.com/taskodos/taskodos/pkg/logger"
	"github.com/taskodos/taskodos/pkg/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.InitLogger(cfg.Server.Debug)

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		logger.Log.Fatalf("Database connection error: %v", err)
	}

	// Schema initialization happens here, once, never during request handling.
	if err := repository.Migrate(db); err != nil {
		logger.Log.Fatalf("Schema migration error: %v", err)
	}

	r := api.NewRouter(db, cfg)

	logger.Log.WithField("addr", cfg.Server.Addr()).Info("starting taskodos server")
	if err := r.Run(cfg.Server.Addr()); err != nil {
		logger.Log.Fatalf("Server error: %v", err)
	}
}
