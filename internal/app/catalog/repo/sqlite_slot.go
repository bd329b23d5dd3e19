package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
)

// cartSlot is the gorm entity behind SQLiteSlot.
type cartSlot struct {
	SlotKey   string `gorm:"primaryKey;column:slot_key"`
	Payload   string `gorm:"column:payload;not null"`
	UpdatedAt time.Time
}

func (cartSlot) TableName() string {
	return "cart_slots"
}

// SQLiteSlot is a SlotStore in a local SQLite file.
type SQLiteSlot struct {
	db *gorm.DB
}

// OpenSQLiteSlot opens (or creates) the SQLite file at path and migrates it.
func OpenSQLiteSlot(path string) (*SQLiteSlot, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cart database: %w", err)
	}
	return NewSQLiteSlot(db)
}

// NewSQLiteSlot creates a SQLiteSlot over db, migrating the slot table.
func NewSQLiteSlot(db *gorm.DB) (*SQLiteSlot, error) {
	if err := db.AutoMigrate(&cartSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart slots: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

func (s *SQLiteSlot) Read(ctx context.Context, key string) ([]byte, error) {
	var row cartSlot
	if err := s.db.WithContext(ctx).First(&row, "slot_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contracts.ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to read cart slot: %w", err)
	}
	return []byte(row.Payload), nil
}

func (s *SQLiteSlot) Write(ctx context.Context, key string, value []byte) error {
	row := cartSlot{SlotKey: key, Payload: string(value)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write cart slot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteSlot) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
