// Package sqlitekv implements persist.Backend on a SQLite table using GORM.
package sqlitekv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Entry is the database row for one key.
type Entry struct {
	Name      string `gorm:"column:name;primaryKey"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// TableName implements gorm's Tabler.
func (Entry) TableName() string { return "kv_entries" }

// Store is a SQLite-backed key-value store.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database file at path and migrates
// the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying db: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Get implements persist.Backend.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	result := s.db.WithContext(ctx).Where("name = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, result.Error)
	}
	return entry.Value, true, nil
}

// Set implements persist.Backend.
func (s *Store) Set(ctx context.Context, key, value string) error {
	entry := Entry{Name: key, Value: value}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("set %s: %w", key, result.Error)
	}
	return nil
}

// Close implements persist.Backend.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get underlying db: %w", err)
	}
	return sqlDB.Close()
}
