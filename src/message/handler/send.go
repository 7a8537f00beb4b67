package message_handler

import (
	common_handler "github.com/Astervia/wacraft-onboarding/src/common/handler"
	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	"github.com/gofiber/fiber/v2"
)

type SendMessageRequest struct {
	AccountID string `json:"accountId" validate:"required,notblank"`
	To        string `json:"to" validate:"required,notblank"`
	Body      string `json:"body" validate:"required,notblank"`
}

// SendMessage sends a text message on behalf of an onboarded client.
//
//	@Summary		Send text message
//	@Description	Looks up the client's stored credentials and relays a text message to the WhatsApp Cloud API.
//	@Tags			Message
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SendMessageRequest					true	"Message"
//	@Success		200		{object}	provider_model.MessageReceipt		"Provider receipt"
//	@Failure		400		{object}	common_model.DescriptiveError		"Invalid request"
//	@Failure		404		{object}	common_model.DescriptiveError		"Client not found"
//	@Failure		500		{object}	common_model.DescriptiveError		"Provider failure"
//	@Router			/send-message [post]
func (h *Handler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if ok, err := common_handler.ParseBody(c, &req); !ok {
		return err
	}

	credential, ok, err := common_handler.LoadCredential(c, h.store, req.AccountID)
	if !ok {
		return err
	}

	receipt, err := h.provider.SendMessage(
		c.UserContext(),
		common_handler.SenderFor(credential),
		provider_model.TextMessage{To: req.To, Body: req.Body},
	)
	if err != nil {
		return common_handler.ProviderFailure(c, "Failed to send message", err)
	}

	return c.Status(fiber.StatusOK).JSON(receipt)
}
