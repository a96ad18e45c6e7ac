package db

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// lessonSeedFile holds the lesson catalogue; its statements are portable across drivers.
const lessonSeedFile = "migrations/000002_seed_lessons.up.sql"

// Migrate brings the schema up to date.
// PostgreSQL runs the versioned SQL migrations; SQLite uses AutoMigrate and
// then applies the lesson seed.
func (d *Database) Migrate() error {
	switch d.cfg.Driver {
	case DriverPostgres:
		return d.migratePostgres()
	case DriverSQLite:
		return d.migrateSQLite()
	default:
		return fmt.Errorf("unsupported database driver %q", d.cfg.Driver)
	}
}

func (d *Database) migratePostgres() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, DriverPostgres, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Database migrations completed", "version", version, "dirty", dirty)
	return nil
}

func (d *Database) migrateSQLite() error {
	if err := d.db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return SeedLessons(d.db)
}
