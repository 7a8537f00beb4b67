package onboarding_router

import (
	onboarding_handler "github.com/Astervia/wacraft-onboarding/src/onboarding/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app fiber.Router, handler *onboarding_handler.Handler) {
	group := app.Group("/oauth")
	group.Get("/start", handler.Start)
	group.Get("/callback", handler.Callback)
}
