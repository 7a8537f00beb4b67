package env

import (
	"fmt"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// Config holds every setting the relay reads from the process environment.
type Config struct {
	Server   ServerConfig
	Meta     MetaConfig
	Graph    GraphConfig
	Database DatabaseConfig
	Webhook  WebhookConfig
}

// Load reads the optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	loadEnvFile(".env")

	var cfg Config
	if err := envparse.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.Server.log()
	cfg.Meta.log()
	cfg.Graph.log()
	cfg.Database.log()
	cfg.Webhook.log()

	return cfg, nil
}

func loadEnvFile(path string) {
	pterm.DefaultLogger.Info(
		"Loading environment variables...",
	)

	err := godotenv.Load(path)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Some error occurred loading the environment file at root directory: %s", err),
		)
		pterm.DefaultLogger.Warn(
			"Using environment variables from the system",
		)
	}
}

// Validate reports the first missing or inconsistent setting.
func (c Config) Validate() error {
	if c.Meta.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	if c.Meta.AppSecret == "" {
		return fmt.Errorf("APP_SECRET is required")
	}
	if c.Meta.VerifyToken == "" {
		return fmt.Errorf("VERIFY_TOKEN is required")
	}
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is %s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver)
	}
	if c.Webhook.QueueSize <= 0 {
		return fmt.Errorf("WEBHOOK_FORWARD_QUEUE must be positive")
	}
	return nil
}
