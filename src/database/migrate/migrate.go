package database_migrate

import (
	"database/sql"
	"fmt"

	_ "github.com/Astervia/wacraft-onboarding/src/database/migrations"
	tenant_entity "github.com/Astervia/wacraft-onboarding/src/tenant/entity"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

const (
	Dir        = "src/database/migrations"
	gooseTable = "goose_db_version"
)

// Up runs the ORM automatic migrations and then the goose migrations.
func Up(db *gorm.DB) error {
	if err := automaticMigrations(db); err != nil {
		return err
	}
	return gooseMigrations(db)
}

// Configures automatic migrations with ORM.
func automaticMigrations(db *gorm.DB) error {
	pterm.DefaultLogger.Info("Adding automatic migrations")
	if err := db.AutoMigrate(&tenant_entity.TenantCredential{}); err != nil {
		return fmt.Errorf("unable to add automatic migrations: %w", err)
	}
	pterm.DefaultLogger.Info("Automatic migrations done")
	return nil
}

// Executes goose migrations.
func gooseMigrations(db *gorm.DB) error {
	pterm.DefaultLogger.Info("Executing goose migrations...")
	sqlDB, err := setup(db)
	if err != nil {
		return err
	}
	if err := goose.Up(sqlDB, Dir); err != nil {
		return fmt.Errorf("unable to execute goose migrations: %w", err)
	}
	pterm.DefaultLogger.Info("Goose migrations executed")
	return nil
}

// Down rolls back the last goose migration.
func Down(db *gorm.DB) error {
	sqlDB, err := setup(db)
	if err != nil {
		return err
	}
	return goose.Down(sqlDB, Dir)
}

// DownTo rolls back goose migrations down to version.
func DownTo(db *gorm.DB, version int64) error {
	sqlDB, err := setup(db)
	if err != nil {
		return err
	}
	return goose.DownTo(sqlDB, Dir, version)
}

// Status prints the goose migration status.
func Status(db *gorm.DB) error {
	sqlDB, err := setup(db)
	if err != nil {
		return err
	}
	return goose.Status(sqlDB, Dir)
}

func setup(db *gorm.DB) (*sql.DB, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	goose.SetTableName(gooseTable)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB, nil
}
