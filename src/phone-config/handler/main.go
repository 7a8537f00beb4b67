package phone_config_handler

import (
	provider_service "github.com/Astervia/wacraft-onboarding/src/provider/service"
	tenant_service "github.com/Astervia/wacraft-onboarding/src/tenant/service"
)

// Handler relays phone number verification and registration calls for onboarded clients.
// The phone number does not need to be verified for any of them.
type Handler struct {
	store    tenant_service.CredentialStore
	provider provider_service.Client
}

func NewHandler(store tenant_service.CredentialStore, provider provider_service.Client) *Handler {
	return &Handler{store: store, provider: provider}
}
