package db

import (
	"fmt"
	"net/url"

	"legali_app_go/logger"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options selects the database backend. A Turso URL takes precedence over the local path.
type Options struct {
	Path        string
	TursoURL    string
	TursoToken  string
	Environment string
}

// Initialize sets up the global database connection
func Initialize(opts Options) error {
	conn, err := Open(opts)
	if err != nil {
		return err
	}
	DB = conn
	return nil
}

// Open opens a database connection without touching the global handle
func Open(opts Options) (*gorm.DB, error) {
	// Determine log level based on environment
	logLevel := gormlogger.Info
	if opts.Environment == "production" {
		logLevel = gormlogger.Warn
	}
	if opts.Environment == "test" {
		logLevel = gormlogger.Silent
	}

	dialector, backend, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.L().Info("database connection established", zap.String("backend", backend))
	return conn, nil
}

func dialectorFor(opts Options) (gorm.Dialector, string, error) {
	if opts.TursoURL != "" {
		dsn, err := tursoDSN(opts.TursoURL, opts.TursoToken)
		if err != nil {
			return nil, "", err
		}
		return sqlite.New(sqlite.Config{DriverName: "libsql", DSN: dsn}), "turso", nil
	}

	// Enable WAL mode for better concurrency support
	return sqlite.Open(opts.Path + "?_journal_mode=WAL"), "sqlite", nil
}

func tursoDSN(rawURL, token string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid TURSO_DATABASE_URL: %w", err)
	}
	if token != "" {
		q := u.Query()
		q.Set("authToken", token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.L().Info("database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
