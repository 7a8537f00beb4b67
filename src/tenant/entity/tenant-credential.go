package tenant_entity

import "time"

// TenantCredential is the stored provider credential of one onboarded WhatsApp Business Account.
type TenantCredential struct {
	AccountID     string    `json:"account_id" gorm:"primaryKey;type:varchar(64)"`
	BusinessID    string    `json:"business_id,omitempty" gorm:"type:varchar(64)"`
	PhoneNumberID string    `json:"phone_number_id" gorm:"type:varchar(64)"`
	AccessToken   string    `json:"-" gorm:"type:text;not null"`
	Verified      bool      `json:"verified" gorm:"not null;default:false"`
	OnboardedAt   time.Time `json:"onboarded_at" gorm:"not null"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TenantCredential) TableName() string {
	return "tenant_credentials"
}

// Onboarded reports whether the record carries the material later provider calls need.
func (t TenantCredential) Onboarded() bool {
	return t.AccountID != "" && t.AccessToken != ""
}
