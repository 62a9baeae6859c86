package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// kvEntry is a row in the key-value table backing SQLiteProvider.
type kvEntry struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:""`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteProvider persists key-value pairs in a local sqlite database.
type SQLiteProvider struct {
	db *gorm.DB
}

// NewSQLiteProvider opens (or creates) the database at path and migrates the
// key-value table.
func NewSQLiteProvider(path string) (*SQLiteProvider, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &SQLiteProvider{db: db}, nil
}

func (p *SQLiteProvider) Get(key string) (string, bool, error) {
	var entry kvEntry
	if err := p.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (p *SQLiteProvider) Set(key, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return p.db.Save(&entry).Error
}
