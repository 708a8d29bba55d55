package store

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"watch-store-backend/internal/model"
)

// SqliteStore is the durable alternative to FileStore: each append is a single
// transactional insert instead of a whole-file rewrite.
type SqliteStore struct {
	db *gorm.DB
}

func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&model.Order{}); err != nil {
		return nil, fmt.Errorf("migrate orders table: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) LoadAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Order("timestamp asc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	return orders, nil
}

func (s *SqliteStore) Append(ctx context.Context, order model.Order) error {
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}
