package main

import (
	"log"
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"workout-logger/internal/app"
	"workout-logger/internal/config"
	"workout-logger/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration invalid: %v", err)
	}

	sessionID := uuid.NewString()
	appLogger := logger.New(cfg.Level(), cfg.JSONLogs).WithSession(sessionID)

	appLogger.Info("Application starting", map[string]interface{}{
		"version":    config.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.Level().String(),
		"store":      cfg.Store,
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(config.AppID)

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Application terminated successfully", nil)
}
