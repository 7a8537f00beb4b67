package server

import (
	"github.com/Astervia/wacraft-onboarding/src/config/env"
	message_handler "github.com/Astervia/wacraft-onboarding/src/message/handler"
	message_router "github.com/Astervia/wacraft-onboarding/src/message/router"
	onboarding_handler "github.com/Astervia/wacraft-onboarding/src/onboarding/handler"
	onboarding_router "github.com/Astervia/wacraft-onboarding/src/onboarding/router"
	onboarding_service "github.com/Astervia/wacraft-onboarding/src/onboarding/service"
	phone_config_handler "github.com/Astervia/wacraft-onboarding/src/phone-config/handler"
	phone_config_router "github.com/Astervia/wacraft-onboarding/src/phone-config/router"
	provider_service "github.com/Astervia/wacraft-onboarding/src/provider/service"
	tenant_service "github.com/Astervia/wacraft-onboarding/src/tenant/service"
	"github.com/Astervia/wacraft-onboarding/src/validators"
	webhook_config "github.com/Astervia/wacraft-onboarding/src/webhook-in/config"
	webhook_service "github.com/Astervia/wacraft-onboarding/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const LandingText = "wacraft onboarding relay is running"

// DefaultBodyLimit applies when the config leaves SERVER_BODY_LIMIT unset.
const DefaultBodyLimit = 32 * 1024 * 1024

// Dependencies are the collaborators every handler is built from.
type Dependencies struct {
	Store    tenant_service.CredentialStore
	Provider provider_service.Client
	Sink     webhook_service.Sink
}

// NewApp builds the fiber app with every route registered.
func NewApp(cfg env.Config, deps Dependencies) *fiber.App {
	bodyLimit := cfg.Server.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	validators.InitValidators()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(LandingText)
	})

	webhook_config.ServeWebhook(app, cfg.Meta.VerifyToken, deps.Sink)
	makeDocs(app)

	machine := onboarding_service.NewMachine(deps.Provider, deps.Store, onboarding_service.OAuthConfig{
		ClientID:     cfg.Meta.AppID,
		ClientSecret: cfg.Meta.AppSecret,
		RedirectURI:  cfg.Meta.RedirectURI,
	})
	onboarding_router.Route(app, onboarding_handler.NewHandler(
		machine,
		onboarding_service.NewStateSigner(cfg.Meta.AppSecret),
		onboarding_handler.DialogConfig{
			BaseURL:     cfg.Graph.DialogURL,
			Version:     cfg.Graph.OAuthVersion,
			AppID:       cfg.Meta.AppID,
			RedirectURI: cfg.Meta.RedirectURI,
			ConfigID:    cfg.Meta.EmbeddedSignupConfigID,
			Scopes:      cfg.Meta.Scopes,
		},
		cfg.Meta.RequireState,
	))

	message_router.Route(app, message_handler.NewHandler(deps.Store, deps.Provider))
	phone_config_router.Route(app, phone_config_handler.NewHandler(deps.Store, deps.Provider))

	return app
}
