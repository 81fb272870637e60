package main

import (
	"log"
	"time"

	"github.com/oguzatay/motorcheck/internal/auth"
	"github.com/oguzatay/motorcheck/internal/config"
	"github.com/oguzatay/motorcheck/internal/db"
	"github.com/oguzatay/motorcheck/internal/logging"
	"github.com/oguzatay/motorcheck/internal/photostore/local"
	"github.com/oguzatay/motorcheck/internal/service"
	"github.com/oguzatay/motorcheck/internal/store"
	"github.com/oguzatay/motorcheck/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		return
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	photoStg, err := local.NewLocalPhotoStore(cfg.PhotoPath, cfg.PublicBaseURL)
	if err != nil {
		logger.Error("failed to initialize photo store", "error", err)
		return
	}

	technicianStore := store.NewTechnicianStore(database)

	maintenance := service.NewMaintenanceService(
		store.NewStepStore(database),
		store.NewCompletionStore(database),
		store.NewPhotoStore(database),
		store.NewMotorStore(database),
		technicianStore,
		store.NewAuditStore(database),
		logger,
	)

	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHrs)*time.Hour)
	authSvc := auth.NewAuthService(technicianStore, tokens, logger)

	server := web.NewServer(maintenance, authSvc, tokens, photoStg, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
