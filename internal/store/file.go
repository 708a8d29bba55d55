package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"watch-store-backend/internal/model"
)

// FileStore keeps orders in a single human-readable JSON array file, rewritten
// wholesale on every append. A mutex guards the read-modify-write window so
// concurrent appends from this process cannot lose each other; the file itself
// assumes a single writing process (no cross-process lock).
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

func NewFileStore(path string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// LoadAll never fails: a missing file means no orders yet, and an unreadable or
// unparsable file is logged and presented as empty so the storefront stays up.
func (s *FileStore) LoadAll(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(), nil
}

func (s *FileStore) Append(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := append(s.loadLocked(), order)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write orders file: %w", err)
	}

	return nil
}

func (s *FileStore) loadLocked() []model.Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to read orders file", "path", s.path, "error", err)
		}
		return []model.Order{}
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.log.Warn("failed to parse orders file", "path", s.path, "error", err)
		return []model.Order{}
	}

	return orders
}
