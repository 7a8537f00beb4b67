package phone_config_router

import (
	phone_config_handler "github.com/Astervia/wacraft-onboarding/src/phone-config/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app fiber.Router, handler *phone_config_handler.Handler) {
	app.Post("/register-number", handler.RegisterNumber)

	group := app.Group("/phone")
	group.Post("/request-code", handler.RequestCode)
	group.Post("/verify-code", handler.VerifyCode)
}
