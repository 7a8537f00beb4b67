package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

func init() {
	goose.AddMigrationNoTxContext(upTenantCredentialIndexes, downTenantCredentialIndexes)
}

// CONCURRENTLY cannot run inside a transaction.
func upTenantCredentialIndexes(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Lookup by phone number id for webhook routing and support queries
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_tenant_credentials_phone_number_id
		   ON tenant_credentials(phone_number_id);`,

		// Clients still waiting for phone verification
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_tenant_credentials_pending
		   ON tenant_credentials(onboarded_at)
		   WHERE verified = FALSE;`,
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upTenantCredentialIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("tenant_credential_indexes: all indexes ensured.")
	return nil
}

func downTenantCredentialIndexes(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`DROP INDEX CONCURRENTLY IF EXISTS idx_tenant_credentials_pending;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_tenant_credentials_phone_number_id;`,
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downTenantCredentialIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("tenant_credential_indexes: all indexes dropped.")
	return nil
}
