package message_router

import (
	message_handler "github.com/Astervia/wacraft-onboarding/src/message/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app fiber.Router, handler *message_handler.Handler) {
	app.Post("/send-message", handler.SendMessage)
}
