package server

import (
	_ "github.com/Astervia/wacraft-onboarding/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

func makeDocs(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
