package env

import (
	"fmt"

	"github.com/pterm/pterm"
)

type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"3000"`
	// BodyLimit caps request bodies in bytes. Webhook batches can exceed fiber's 4MB default.
	BodyLimit int `env:"SERVER_BODY_LIMIT" envDefault:"33554432"`
}

func (s ServerConfig) log() {
	pterm.DefaultLogger.Info(fmt.Sprintf("Server will listen on port %s with a %d byte body limit", s.Port, s.BodyLimit))
}
