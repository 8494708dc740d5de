// Package database opens the SQLite databases budgets are stored in.
package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at dsn.
//
// Use ":memory:" for a database that only lives as long as the connection.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{Logger: log.Logger},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and keeps
	// in-memory databases alive between queries.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Close closes the connection pool of db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
