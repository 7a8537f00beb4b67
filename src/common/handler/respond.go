package common_handler

import (
	"errors"

	common_model "github.com/Astervia/wacraft-core/src/common/model"
	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
	tenant_service "github.com/Astervia/wacraft-onboarding/src/tenant/service"
	"github.com/Astervia/wacraft-onboarding/src/validators"
	"github.com/gofiber/fiber/v2"
)

// ParseBody decodes and validates a JSON request body. On failure the 400 response
// is already written and ok is false.
func ParseBody(c *fiber.Ctx, target any) (ok bool, err error) {
	if err := c.BodyParser(target); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(target); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}
	return true, nil
}

// LoadCredential fetches the tenant of accountID. On failure the 404/500 response is
// already written and ok is false.
func LoadCredential(
	c *fiber.Ctx,
	store tenant_service.CredentialStore,
	accountID string,
) (credential tenant_entity.TenantCredential, ok bool, err error) {
	credential, err = store.Get(c.UserContext(), accountID)
	if errors.Is(err, tenant_service.ErrNotFound) {
		return credential, false, c.Status(fiber.StatusNotFound).JSON(
			common_model.NewApiError("Client not found", err, "database").Send(),
		)
	}
	if err != nil {
		return credential, false, c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("Unable to load client credentials", err, "database").Send(),
		)
	}
	return credential, true, nil
}

// SenderFor returns the provider identity stored for a credential.
func SenderFor(credential tenant_entity.TenantCredential) provider_model.Sender {
	return provider_model.Sender{
		AccessToken:   credential.AccessToken,
		AccountID:     credential.AccountID,
		PhoneNumberID: credential.PhoneNumberID,
	}
}

// ProviderFailure answers 500 for any error returned by the provider client.
func ProviderFailure(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(
		common_model.NewApiError(message, err, "whatsapp").Send(),
	)
}
