package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// kvSlot is the row shape of the sqlite backend: one row per named slot.
type kvSlot struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

func (kvSlot) TableName() string {
	return "kv_slots"
}

// SQLiteStore persists key-value slots in a single-file sqlite database.
// Alternate backend for deployments that prefer an inspectable file.
type SQLiteStore struct {
	db *gorm.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the sqlite database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(
		sqlite.Open(path),
		&gorm.Config{Logger: gormlogger.Discard},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&kvSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var slot kvSlot
	err := s.db.WithContext(ctx).First(&slot, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return slot.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	slot := kvSlot{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Save(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
