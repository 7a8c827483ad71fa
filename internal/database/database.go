package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/config"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database selected by config.Driver.
func NewManager(cfg *Config) (*Manager, error) {
	gormConfig := &gorm.Config{Logger: logger.NewGormLogger(cfg.LogSQL)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = openSQLite(cfg.Path, gormConfig)
	case config.DriverPostgres, "":
		db, err = openPostgres(cfg.DSN(), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	return &Manager{db: db, config: cfg}, nil
}

func openPostgres(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func openSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// SQLite serialises writers; one connection keeps the balance CAS free
	// of SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
	} {
		if _, err := sqlDB.Exec(pragma); err != nil {
			logger.Get().Warnw("sqlite pragma failed", "pragma", pragma, "error", err)
		}
	}

	return db, nil
}

// Migrate brings the schema up to date. PostgreSQL runs the SQL migrations
// in MigrationsPath; SQLite uses GORM's AutoMigrate.
func (m *Manager) Migrate() error {
	if m.config.Driver == config.DriverSQLite {
		logger.Get().Info("Auto-migrating SQLite schema...")
		if err := m.db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}
	return m.RunMigrations()
}

// RunMigrations applies pending SQL migrations from the migrations directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer closeMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// NewMigrator returns a golang-migrate instance for the PostgreSQL database.
// Callers must close it.
func NewMigrator(cfg *Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(cfg.SourceURL(), cfg.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func closeMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
