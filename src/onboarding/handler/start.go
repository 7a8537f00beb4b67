package onboarding_handler

import (
	"net/url"
	"strings"

	common_model "github.com/Astervia/wacraft-core/src/common/model"
	"github.com/gofiber/fiber/v2"
)

// Start redirects the browser to the OAuth dialog with a freshly signed state.
//
//	@Summary		Start embedded signup
//	@Description	Redirects to Meta's OAuth dialog. The callback verifies the state it carries.
//	@Tags			Onboarding
//	@Success		302	"Redirect to the OAuth dialog"
//	@Failure		500	{object}	common_model.DescriptiveError	"Unable to sign state"
//	@Router			/oauth/start [get]
func (h *Handler) Start(c *fiber.Ctx) error {
	state, err := h.signer.Sign()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("Unable to sign state", err, "handler").Send(),
		)
	}
	return c.Redirect(h.dialog.URL(state), fiber.StatusFound)
}

// URL builds the dialog address for the given state.
func (d DialogConfig) URL(state string) string {
	query := url.Values{}
	query.Set("client_id", d.AppID)
	query.Set("response_type", "code")
	query.Set("state", state)
	if d.RedirectURI != "" {
		query.Set("redirect_uri", d.RedirectURI)
	}
	if d.ConfigID != "" {
		query.Set("config_id", d.ConfigID)
	}
	if len(d.Scopes) > 0 {
		query.Set("scope", strings.Join(d.Scopes, ","))
	}
	return strings.TrimRight(d.BaseURL, "/") + "/" + d.Version + "/dialog/oauth?" + query.Encode()
}
