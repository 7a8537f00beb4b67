package message_handler

import (
	provider_service "github.com/Astervia/wacraft-onboarding/src/provider/service"
	tenant_service "github.com/Astervia/wacraft-onboarding/src/tenant/service"
)

type Handler struct {
	store    tenant_service.CredentialStore
	provider provider_service.Client
}

func NewHandler(store tenant_service.CredentialStore, provider provider_service.Client) *Handler {
	return &Handler{store: store, provider: provider}
}
