package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultKey is the key budgets are stored under when none is given.
const DefaultKey = "budget"

// document is one stored budget.
type document struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (document) TableName() string {
	return "documents"
}

// SQLite stores documents in a SQLite database, one row per key.
type SQLite struct {
	db  *gorm.DB
	key string
	log zerolog.Logger
}

// NewSQLite returns a backend storing the document under key and migrates
// the schema.
func NewSQLite(db *gorm.DB, key string, logger zerolog.Logger) (*SQLite, error) {
	if key == "" {
		key = DefaultKey
	}

	s := &SQLite{db: db, key: key, log: logger}
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, s.translate(fmt.Errorf("error during DB migration: %w", err))
	}

	return s, nil
}

func (s *SQLite) Read(ctx context.Context) ([]byte, error) {
	var d document
	err := s.db.WithContext(ctx).Where(&document{Key: s.key}).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.translate(err)
	}

	if len(d.Data) == 0 {
		return nil, ErrNotFound
	}
	return d.Data, nil
}

func (s *SQLite) Write(ctx context.Context, data []byte) error {
	d := document{Key: s.key, Data: data}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&d).Error

	return s.translate(err)
}

// translate maps driver errors onto ErrBackend.
func (s *SQLite) translate(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		s.log.Error().Int("code", sqliteErr.Code()).Msgf("%T: %v", err, err.Error())
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	// "sql: database is closed" is hard-coded in database/sql
	if err.Error() == "sql: database is closed" {
		s.log.Error().Msgf("%T: %v", err, err.Error())
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return err
}
