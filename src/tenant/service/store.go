package tenant_service

import (
	"context"
	"errors"

	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
)

var (
	// ErrNotFound is returned when no credential is stored for an account id.
	ErrNotFound = errors.New("tenant credential not found")
	// ErrIncompleteCredential is returned when an upsert lacks the account id or access token.
	ErrIncompleteCredential = errors.New("tenant credential requires account id and access token")
)

// CredentialStore persists one TenantCredential per account id.
type CredentialStore interface {
	Get(ctx context.Context, accountID string) (tenant_entity.TenantCredential, error)
	// Upsert creates the record or refreshes its phone number, business id and token.
	// OnboardedAt and Verified of an existing record are never touched.
	Upsert(ctx context.Context, credential tenant_entity.TenantCredential) (tenant_entity.TenantCredential, error)
	// MarkVerified flips Verified to true. Calling it on a verified record is a no-op.
	MarkVerified(ctx context.Context, accountID string) error
}
