package env

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// WebhookConfig controls where received webhook events are forwarded.
type WebhookConfig struct {
	ForwardURLs    []string      `env:"WEBHOOK_FORWARD_URLS" envSeparator:","`
	ForwardTimeout time.Duration `env:"WEBHOOK_FORWARD_TIMEOUT" envDefault:"10s"`
	QueueSize      int           `env:"WEBHOOK_FORWARD_QUEUE" envDefault:"256"`
}

func (w WebhookConfig) log() {
	if len(w.ForwardURLs) == 0 {
		pterm.DefaultLogger.Info("Webhook forwarding is DISABLED, events are logged only")
		return
	}
	pterm.DefaultLogger.Info(
		fmt.Sprintf("Webhook forwarding is ENABLED to %d targets (queue %d, timeout %s)", len(w.ForwardURLs), w.QueueSize, w.ForwardTimeout),
	)
}
