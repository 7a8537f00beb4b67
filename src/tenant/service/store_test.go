package tenant_service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type storeFactory func(t *testing.T, clock func() time.Time) CredentialStore

func memoryFactory(t *testing.T, clock func() time.Time) CredentialStore {
	store := NewMemoryStore()
	store.now = clock
	return store
}

func gormFactory(t *testing.T, clock func() time.Time) CredentialStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&tenant_entity.TenantCredential{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store := NewGormStore(db)
	store.now = clock
	return store
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCredentialStores(t *testing.T) {
	factories := map[string]storeFactory{
		"memory": memoryFactory,
		"gorm":   gormFactory,
	}
	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			t.Run("get unknown account", func(t *testing.T) {
				store := factory(t, time.Now)
				_, err := store.Get(context.Background(), "missing")
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
			})

			t.Run("upsert rejects incomplete credential", func(t *testing.T) {
				store := factory(t, time.Now)
				_, err := store.Upsert(context.Background(), tenant_entity.TenantCredential{AccountID: "waba-1"})
				if !errors.Is(err, ErrIncompleteCredential) {
					t.Fatalf("expected ErrIncompleteCredential, got %v", err)
				}
				if _, err := store.Get(context.Background(), "waba-1"); !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected nothing stored, got %v", err)
				}
			})

			t.Run("upsert creates unverified record", func(t *testing.T) {
				clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
				store := factory(t, clock.Now)
				created, err := store.Upsert(context.Background(), tenant_entity.TenantCredential{
					AccountID:     "waba-1",
					BusinessID:    "biz-1",
					PhoneNumberID: "phone-1",
					AccessToken:   "token-1",
					Verified:      true,
				})
				if err != nil {
					t.Fatalf("upsert: %v", err)
				}
				if created.Verified {
					t.Fatalf("expected new record to be unverified")
				}
				if !created.OnboardedAt.Equal(clock.Now()) {
					t.Fatalf("expected onboarded_at %s, got %s", clock.Now(), created.OnboardedAt)
				}
				if created.AccessToken != "token-1" || created.PhoneNumberID != "phone-1" {
					t.Fatalf("unexpected stored credential %+v", created)
				}
			})

			t.Run("re-onboarding keeps onboarded_at and verified", func(t *testing.T) {
				clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
				store := factory(t, clock.Now)
				ctx := context.Background()
				first, err := store.Upsert(ctx, tenant_entity.TenantCredential{AccountID: "waba-1", PhoneNumberID: "phone-1", AccessToken: "token-1"})
				if err != nil {
					t.Fatalf("first upsert: %v", err)
				}
				if err := store.MarkVerified(ctx, "waba-1"); err != nil {
					t.Fatalf("mark verified: %v", err)
				}

				clock.Advance(time.Hour)
				second, err := store.Upsert(ctx, tenant_entity.TenantCredential{AccountID: "waba-1", PhoneNumberID: "phone-2", AccessToken: "token-2"})
				if err != nil {
					t.Fatalf("second upsert: %v", err)
				}
				if !second.OnboardedAt.Equal(first.OnboardedAt) {
					t.Fatalf("expected onboarded_at %s to be kept, got %s", first.OnboardedAt, second.OnboardedAt)
				}
				if !second.Verified {
					t.Fatalf("expected verified to survive re-onboarding")
				}
				if second.AccessToken != "token-2" || second.PhoneNumberID != "phone-2" {
					t.Fatalf("expected refreshed token and phone, got %+v", second)
				}
			})

			t.Run("mark verified is monotonic", func(t *testing.T) {
				store := factory(t, time.Now)
				ctx := context.Background()
				if _, err := store.Upsert(ctx, tenant_entity.TenantCredential{AccountID: "waba-1", PhoneNumberID: "phone-1", AccessToken: "token-1"}); err != nil {
					t.Fatalf("upsert: %v", err)
				}
				for i := 0; i < 2; i++ {
					if err := store.MarkVerified(ctx, "waba-1"); err != nil {
						t.Fatalf("mark verified #%d: %v", i+1, err)
					}
					got, err := store.Get(ctx, "waba-1")
					if err != nil {
						t.Fatalf("get: %v", err)
					}
					if !got.Verified {
						t.Fatalf("expected verified after call #%d", i+1)
					}
				}
			})

			t.Run("mark verified unknown account", func(t *testing.T) {
				store := factory(t, time.Now)
				if err := store.MarkVerified(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
			})
		})
	}
}
