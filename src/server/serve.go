package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astervia/wacraft-onboarding/src/config/env"
	"github.com/Astervia/wacraft-onboarding/src/database"
	database_migrate "github.com/Astervia/wacraft-onboarding/src/database/migrate"
	provider_service "github.com/Astervia/wacraft-onboarding/src/provider/service"
	tenant_service "github.com/Astervia/wacraft-onboarding/src/tenant/service"
	webhook_worker "github.com/Astervia/wacraft-onboarding/src/webhook/worker"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

// Serve opens the credential store, starts the forward worker and listens until
// SIGINT or SIGTERM.
func Serve(cfg env.Config) error {
	store, db, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	if db != nil {
		defer database.Close(db)
	}

	provider := provider_service.NewGraphClient(provider_service.GraphConfig{
		BaseURL:      cfg.Graph.BaseURL,
		OAuthVersion: cfg.Graph.OAuthVersion,
		APIVersion:   cfg.Graph.APIVersion,
		Timeout:      cfg.Graph.Timeout,
	}, &http.Client{})

	// Start webhook delivery worker
	deliveryWorker := webhook_worker.NewDeliveryWorker(
		cfg.Webhook.ForwardURLs,
		cfg.Webhook.ForwardTimeout,
		cfg.Webhook.QueueSize,
	)
	deliveryWorker.Start()

	app := NewApp(cfg, Dependencies{Store: store, Provider: provider, Sink: deliveryWorker})

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping services...")
		if err := app.Shutdown(); err != nil {
			pterm.DefaultLogger.Warn(fmt.Sprintf("Error shutting down server: %s", err))
		}
	}()

	pterm.DefaultLogger.Info(fmt.Sprintf("Listening on :%s", cfg.Server.Port))
	err = app.Listen(fmt.Sprintf(":%s", cfg.Server.Port))
	deliveryWorker.Stop()
	return err
}

func openStore(cfg env.DatabaseConfig) (tenant_service.CredentialStore, *gorm.DB, error) {
	if cfg.Driver == env.DriverMemory {
		return tenant_service.NewMemoryStore(), nil, nil
	}

	db, err := database.Open(cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := database_migrate.Up(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}
	return tenant_service.NewGormStore(db), db, nil
}
