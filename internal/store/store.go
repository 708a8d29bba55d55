package store

import (
	"context"

	"watch-store-backend/internal/model"
)

// OrderStore is an append-only collection of confirmed orders. There are no
// update, delete, or lookup-by-id operations: records are immutable once
// appended.
type OrderStore interface {
	// LoadAll returns every stored order in insertion order.
	LoadAll(ctx context.Context) ([]model.Order, error)

	// Append adds one order to the collection.
	Append(ctx context.Context, order model.Order) error
}
