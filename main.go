package main

import (
	"fmt"
	"os"

	"github.com/Astervia/wacraft-onboarding/src/config/env"
	"github.com/Astervia/wacraft-onboarding/src/database"
	database_migrate "github.com/Astervia/wacraft-onboarding/src/database/migrate"
	"github.com/Astervia/wacraft-onboarding/src/server"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

//go:generate swag init -g main.go -o docs

// @title			wacraft Onboarding API
// @version		0.1.0
// @description	WhatsApp embedded signup relay. Onboards client businesses, receives webhooks and relays messaging and phone verification calls.
// @contact.name	Astervia Dev Team
// @contact.url	https://github.com/Astervia
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @BasePath		/
// @schemes		http https
func main() {
	cfg, err := env.Load()
	if err != nil {
		pterm.DefaultLogger.Fatal(fmt.Sprintf("Invalid configuration: %s", err))
	}

	// Check for CLI commands
	if len(os.Args) > 1 {
		command := os.Args[1]

		switch command {
		case "migrate:up":
			withDatabase(cfg, runMigrationUp)
			return
		case "migrate:down":
			withDatabase(cfg, runMigrationDown)
			return
		case "migrate:status":
			withDatabase(cfg, runMigrationStatus)
			return
		case "migrate:down-to":
			if len(os.Args) < 3 {
				pterm.DefaultLogger.Error("Usage: ./wacraft-onboarding migrate:down-to <version>")
				os.Exit(1)
			}
			withDatabase(cfg, func(db *gorm.DB) { runMigrationDownTo(db, os.Args[2]) })
			return
		default:
			pterm.DefaultLogger.Error(fmt.Sprintf("Unknown command: %s", command))
			pterm.DefaultLogger.Info("Available commands: migrate:up, migrate:down, migrate:status, migrate:down-to <version>")
			os.Exit(1)
		}
	}

	if err := server.Serve(cfg); err != nil {
		pterm.DefaultLogger.Fatal(fmt.Sprintf("%v", err))
	}
}

func withDatabase(cfg env.Config, run func(db *gorm.DB)) {
	if cfg.Database.Driver != env.DriverPostgres {
		pterm.DefaultLogger.Error(fmt.Sprintf("Migrations require STORE_DRIVER=%s", env.DriverPostgres))
		os.Exit(1)
	}

	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Failed to get database connection: %s", err))
		os.Exit(1)
	}
	defer database.Close(db)

	run(db)
}

func runMigrationUp(db *gorm.DB) {
	pterm.DefaultLogger.Info("Applying migrations...")
	if err := database_migrate.Up(db); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Failed to apply migrations: %s", err))
		os.Exit(1)
	}
	pterm.DefaultLogger.Info("Migrations applied successfully")
}

func runMigrationDown(db *gorm.DB) {
	pterm.DefaultLogger.Info("Rolling back last migration...")
	if err := database_migrate.Down(db); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Failed to roll back migration: %s", err))
		os.Exit(1)
	}
	pterm.DefaultLogger.Info("Migration rolled back successfully")
}

func runMigrationStatus(db *gorm.DB) {
	pterm.DefaultLogger.Info("Checking migration status...")
	if err := database_migrate.Status(db); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Failed to check migration status: %s", err))
		os.Exit(1)
	}
}

func runMigrationDownTo(db *gorm.DB, version string) {
	pterm.DefaultLogger.Info(fmt.Sprintf("Rolling back to migration version %s...", version))

	versionInt := int64(0)
	if _, err := fmt.Sscanf(version, "%d", &versionInt); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Invalid version format: %s", version))
		os.Exit(1)
	}

	if err := database_migrate.DownTo(db, versionInt); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Failed to roll back to version %s: %s", version, err))
		os.Exit(1)
	}

	pterm.DefaultLogger.Info(fmt.Sprintf("Successfully rolled back to migration version %s", version))
}
