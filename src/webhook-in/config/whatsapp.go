package webhook_config

import (
	webhook_handler "github.com/Astervia/wacraft-onboarding/src/webhook-in/handler"
	webhook_service "github.com/Astervia/wacraft-onboarding/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

const Path = "/webhook"

// ServeWebhook registers the verification and event endpoints for the app's webhook.
func ServeWebhook(app fiber.Router, verifyToken string, sink webhook_service.Sink) {
	handler := webhook_handler.NewHandler(webhook_service.NewGateway(verifyToken, sink))

	group := app.Group(Path)
	group.Get("", handler.Verify)
	group.Post("", handler.Receive)

	pterm.DefaultLogger.Info("Registered webhook at " + Path)
}
