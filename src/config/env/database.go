package env

import (
	"github.com/pterm/pterm"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"postgres"`
	URL    string `env:"DATABASE_URL"`
}

func (d DatabaseConfig) log() {
	if d.Driver == DriverMemory {
		pterm.DefaultLogger.Warn("Using in-memory credential store, tenants are lost on restart")
		return
	}
	pterm.DefaultLogger.Info("Using postgres credential store")
}
