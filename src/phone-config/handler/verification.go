package phone_config_handler

import (
	"fmt"

	common_model "github.com/Astervia/wacraft-core/src/common/model"
	common_handler "github.com/Astervia/wacraft-onboarding/src/common/handler"
	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

type RequestCodeRequest struct {
	AccountID  string `json:"accountId" validate:"required,notblank"`
	CodeMethod string `json:"codeMethod,omitempty" validate:"omitempty,oneof=SMS VOICE"`
	Language   string `json:"language,omitempty"`
}

type VerifyCodeRequest struct {
	AccountID string `json:"accountId" validate:"required,notblank"`
	Code      string `json:"code" validate:"required,notblank"`
}

// RequestCode requests a phone verification code via SMS or voice call.
//
//	@Summary		Request phone verification code
//	@Description	Requests a verification code for the phone number stored for the client.
//	@Tags			Phone
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RequestCodeRequest				true	"Request code data"
//	@Success		200		{object}	provider_model.Ack				"Success"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request"
//	@Failure		404		{object}	common_model.DescriptiveError	"Client not found"
//	@Failure		500		{object}	common_model.DescriptiveError	"Provider failure"
//	@Router			/phone/request-code [post]
func (h *Handler) RequestCode(c *fiber.Ctx) error {
	var req RequestCodeRequest
	if ok, err := common_handler.ParseBody(c, &req); !ok {
		return err
	}

	credential, ok, err := common_handler.LoadCredential(c, h.store, req.AccountID)
	if !ok {
		return err
	}

	result, err := h.provider.RequestVerificationCode(
		c.UserContext(),
		common_handler.SenderFor(credential),
		provider_model.RequestCodeInput{Method: req.CodeMethod, Language: req.Language},
	)
	if err != nil {
		return common_handler.ProviderFailure(c, "Failed to request verification code", err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// VerifyCode verifies a phone verification code and marks the client as verified.
//
//	@Summary		Verify phone verification code
//	@Description	Verifies the code received on the client's phone number. On success the client is marked as verified.
//	@Tags			Phone
//	@Accept			json
//	@Produce		json
//	@Param			body	body		VerifyCodeRequest				true	"Verify code data"
//	@Success		200		{object}	provider_model.Ack				"Success"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request"
//	@Failure		404		{object}	common_model.DescriptiveError	"Client not found"
//	@Failure		500		{object}	common_model.DescriptiveError	"Provider failure"
//	@Router			/phone/verify-code [post]
func (h *Handler) VerifyCode(c *fiber.Ctx) error {
	var req VerifyCodeRequest
	if ok, err := common_handler.ParseBody(c, &req); !ok {
		return err
	}

	credential, ok, err := common_handler.LoadCredential(c, h.store, req.AccountID)
	if !ok {
		return err
	}

	result, err := h.provider.VerifyCode(c.UserContext(), common_handler.SenderFor(credential), req.Code)
	if err != nil {
		return common_handler.ProviderFailure(c, "Failed to verify code", err)
	}

	if err := h.store.MarkVerified(c.UserContext(), credential.AccountID); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Code verified for account %s but the credential could not be updated: %s", credential.AccountID, err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("Unable to mark client as verified", err, "database").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
