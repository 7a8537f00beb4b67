package phone_config_handler

import (
	common_handler "github.com/Astervia/wacraft-onboarding/src/common/handler"
	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	AccountID string `json:"accountId" validate:"required,notblank"`
	Pin       string `json:"pin" validate:"required,len=6,numeric"`
}

// RegisterNumber registers the client's phone number to WhatsApp Cloud API.
//
//	@Summary		Register phone number
//	@Description	Registers the phone number stored for the client. Requires the two-step verification PIN.
//	@Tags			Phone
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RegisterRequest					true	"Register data"
//	@Success		200		{object}	provider_model.Ack				"Success"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request"
//	@Failure		404		{object}	common_model.DescriptiveError	"Client not found"
//	@Failure		500		{object}	common_model.DescriptiveError	"Provider failure"
//	@Router			/register-number [post]
func (h *Handler) RegisterNumber(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := common_handler.ParseBody(c, &req); !ok {
		return err
	}

	credential, ok, err := common_handler.LoadCredential(c, h.store, req.AccountID)
	if !ok {
		return err
	}

	result, err := h.provider.RegisterPhone(c.UserContext(), common_handler.SenderFor(credential), req.Pin)
	if err != nil {
		return common_handler.ProviderFailure(c, "Failed to register phone number", err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
