package tenant_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns refreshed when an already onboarded account goes through signup again.
var upsertColumns = []string{"business_id", "phone_number_id", "access_token", "updated_at"}

// GormStore keeps credentials in the tenant_credentials table.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Get(ctx context.Context, accountID string) (tenant_entity.TenantCredential, error) {
	var credential tenant_entity.TenantCredential
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tenant_entity.TenantCredential{}, ErrNotFound
	}
	if err != nil {
		return tenant_entity.TenantCredential{}, fmt.Errorf("get tenant credential %s: %w", accountID, err)
	}
	return credential, nil
}

func (s *GormStore) Upsert(ctx context.Context, credential tenant_entity.TenantCredential) (tenant_entity.TenantCredential, error) {
	if !credential.Onboarded() {
		return tenant_entity.TenantCredential{}, ErrIncompleteCredential
	}

	now := s.now().UTC()
	credential.Verified = false
	credential.OnboardedAt = now
	credential.UpdatedAt = now

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(&credential).Error
	if err != nil {
		return tenant_entity.TenantCredential{}, fmt.Errorf("upsert tenant credential %s: %w", credential.AccountID, err)
	}

	return s.Get(ctx, credential.AccountID)
}

func (s *GormStore) MarkVerified(ctx context.Context, accountID string) error {
	result := s.db.WithContext(ctx).
		Model(&tenant_entity.TenantCredential{}).
		Where("account_id = ?", accountID).
		Updates(map[string]any{"verified": true, "updated_at": s.now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("mark tenant %s verified: %w", accountID, result.Error)
	}
	if result.RowsAffected == 0 {
		// Some drivers report zero rows when nothing changed.
		if _, err := s.Get(ctx, accountID); err != nil {
			return err
		}
	}
	return nil
}
