package webhook_handler

import (
	"fmt"

	common_model "github.com/Astervia/wacraft-core/src/common/model"
	webhook_service "github.com/Astervia/wacraft-onboarding/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

type Handler struct {
	gateway *webhook_service.Gateway
}

func NewHandler(gateway *webhook_service.Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// Verify answers Meta's webhook verification request.
//
//	@Summary		Webhook verification
//	@Description	Echoes hub.challenge when hub.mode is subscribe and hub.verify_token matches.
//	@Tags			Webhook
//	@Produce		plain
//	@Param			hub.mode			query		string	true	"Mode"
//	@Param			hub.verify_token	query		string	true	"Verify token"
//	@Param			hub.challenge		query		string	true	"Challenge"
//	@Success		200					{string}	string	"Challenge"
//	@Failure		403					{object}	common_model.DescriptiveError	"Forbidden"
//	@Router			/webhook [get]
func (h *Handler) Verify(c *fiber.Ctx) error {
	challenge, err := h.gateway.VerifyHandshake(
		c.Query("hub.mode"),
		c.Query("hub.verify_token"),
		c.Query("hub.challenge"),
	)
	if err != nil {
		pterm.DefaultLogger.Warn(fmt.Sprintf("Webhook verification rejected for mode %q", c.Query("hub.mode")))
		return c.Status(fiber.StatusForbidden).JSON(
			common_model.NewApiError("Forbidden", err, "handler").Send(),
		)
	}

	pterm.DefaultLogger.Info("Webhook verified")
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// Receive accepts an event delivery. It always answers 200.
//
//	@Summary		Webhook event
//	@Description	Logs and forwards the event. Always acknowledged.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		plain
//	@Success		200	{string}	string	"EVENT_RECEIVED"
//	@Router			/webhook [post]
func (h *Handler) Receive(c *fiber.Ctx) error {
	ack := h.gateway.AcceptEvent(c.UserContext(), c.Body())
	return c.Status(fiber.StatusOK).SendString(ack.Status)
}
