package onboarding_handler

import (
	"errors"
	"fmt"

	common_model "github.com/Astervia/wacraft-core/src/common/model"
	onboarding_service "github.com/Astervia/wacraft-onboarding/src/onboarding/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// Callback runs the onboarding sequence for the authorization code Meta redirected with.
//
//	@Summary		OAuth callback
//	@Description	Exchanges the code, discovers the WhatsApp Business Account and phone number, subscribes the app and stores the credentials.
//	@Tags			Onboarding
//	@Produce		json
//	@Param			code			query		string							true	"Authorization code"
//	@Param			waba_id			query		string							false	"WABA id reported by embedded signup"
//	@Param			phone_number_id	query		string							false	"Phone number id reported by embedded signup"
//	@Param			state			query		string							false	"State issued by /oauth/start, required with OAUTH_REQUIRE_STATE"
//	@Success		200				{object}	onboarding_service.Result		"Pending verification"
//	@Failure		400				{object}	common_model.DescriptiveError	"Missing code, missing or invalid state"
//	@Failure		500				{object}	CallbackFailure					"Onboarding failed"
//	@Router			/oauth/callback [get]
func (h *Handler) Callback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" && h.requireState {
		pterm.DefaultLogger.Warn("Rejected OAuth callback without state")
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("State is required", errMissingState, "handler").Send(),
		)
	}
	if state != "" {
		if err := h.signer.Verify(state); err != nil {
			pterm.DefaultLogger.Warn(fmt.Sprintf("Rejected OAuth callback with invalid state: %s", err))
			return c.Status(fiber.StatusBadRequest).JSON(
				common_model.NewApiError("Invalid state", err, "handler").Send(),
			)
		}
	}

	result, err := h.machine.Run(c.UserContext(), onboarding_service.Request{
		Code:          c.Query("code"),
		AccountID:     c.Query("waba_id"),
		PhoneNumberID: c.Query("phone_number_id"),
	})
	if errors.Is(err, onboarding_service.ErrPreconditionFailed) {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("Authorization code is required", err, "handler").Send(),
		)
	}

	var stepErr *onboarding_service.StepError
	if errors.As(err, &stepErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(CallbackFailure{
			Status: string(onboarding_service.StateFailed),
			State:  string(stepErr.State),
			RunID:  result.RunID,
			Error: common_model.NewApiError(
				fmt.Sprintf("Onboarding failed entering %s", stepErr.State), stepErr.Err, "whatsapp",
			).Send(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("Onboarding failed", err, "handler").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

var errMissingState = fmt.Errorf("%w: missing", onboarding_service.ErrInvalidState)

// CallbackFailure names the state the onboarding run could not enter.
type CallbackFailure struct {
	Status string `json:"status"`
	State  string `json:"state"`
	RunID  string `json:"runId"`
	Error  any    `json:"error"`
}
