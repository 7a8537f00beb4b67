package onboarding_handler

import (
	onboarding_service "github.com/Astervia/wacraft-onboarding/src/onboarding/service"
)

// DialogConfig describes the OAuth dialog /oauth/start redirects to.
type DialogConfig struct {
	BaseURL     string
	Version     string
	AppID       string
	RedirectURI string
	ConfigID    string
	Scopes      []string
}

type Handler struct {
	machine      *onboarding_service.Machine
	signer       *onboarding_service.StateSigner
	dialog       DialogConfig
	requireState bool
}

// NewHandler builds the OAuth handlers. With requireState the callback refuses
// requests that carry no state, so every onboarding must begin at /oauth/start.
func NewHandler(
	machine *onboarding_service.Machine,
	signer *onboarding_service.StateSigner,
	dialog DialogConfig,
	requireState bool,
) *Handler {
	return &Handler{machine: machine, signer: signer, dialog: dialog, requireState: requireState}
}
