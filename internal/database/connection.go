package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Connection pool settings. Each request runs its own transaction on its own
// pooled connection; nothing is shared between in-flight requests.
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	// Normalize driver name
	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	// Retry logic: max 5 attempts with exponential backoff
	maxRetries := 5
	retryDelays := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		// Select driver based on configuration
		switch driver {
		case "postgres", "postgresql":
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})

		case "sqlite", "":
			log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})

		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
		}

		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				log.WithError(sqlErr).Error("Failed to get database instance")
				err = sqlErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				log.WithError(pingErr).Error("Failed to ping database")
				err = pingErr
			} else {
				configureConnectionPool(sqlDB)
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	// All retries exhausted
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpenConns,
		"max_idle_conns":    maxIdleConns,
		"conn_max_lifetime": connMaxLifetime.String(),
	}).Debug("Connection pool configured")
}
