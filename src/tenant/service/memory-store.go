package tenant_service

import (
	"context"
	"sync"
	"time"

	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
)

// MemoryStore is a CredentialStore backed by a map. Used for local runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	credentials map[string]tenant_entity.TenantCredential
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		credentials: make(map[string]tenant_entity.TenantCredential),
		now:         time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, accountID string) (tenant_entity.TenantCredential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credential, ok := s.credentials[accountID]
	if !ok {
		return tenant_entity.TenantCredential{}, ErrNotFound
	}
	return credential, nil
}

func (s *MemoryStore) Upsert(_ context.Context, credential tenant_entity.TenantCredential) (tenant_entity.TenantCredential, error) {
	if !credential.Onboarded() {
		return tenant_entity.TenantCredential{}, ErrIncompleteCredential
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	if existing, ok := s.credentials[credential.AccountID]; ok {
		existing.BusinessID = credential.BusinessID
		existing.PhoneNumberID = credential.PhoneNumberID
		existing.AccessToken = credential.AccessToken
		existing.UpdatedAt = now
		s.credentials[credential.AccountID] = existing
		return existing, nil
	}

	credential.Verified = false
	credential.OnboardedAt = now
	credential.UpdatedAt = now
	s.credentials[credential.AccountID] = credential
	return credential, nil
}

func (s *MemoryStore) MarkVerified(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, ok := s.credentials[accountID]
	if !ok {
		return ErrNotFound
	}
	if !credential.Verified {
		credential.Verified = true
		credential.UpdatedAt = s.now().UTC()
		s.credentials[credential.AccountID] = credential
	}
	return nil
}
