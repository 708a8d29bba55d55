package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"watch-store-backend/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func fakeOrder(id string) model.Order {
	paymentID := gofakeit.UUID()
	return model.Order{
		ID:        id,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Customer: model.Customer{
			Name:    gofakeit.Name(),
			Phone:   gofakeit.Phone(),
			Address: gofakeit.Address().Address,
		},
		Items: []map[string]any{
			{"name": gofakeit.ProductName(), "price": "2500.00", "quantity": "1"},
		},
		Total:         decimal.NewFromInt(2500),
		PaymentMethod: "online",
		PaymentID:     &paymentID,
		Status:        "confirmed",
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "orders.json"), testLogger())

	want := fakeOrder("ORD20250101120000")
	if err := s.Append(ctx, want); err != nil {
		t.Fatalf("append: %v", err)
	}

	orders, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}

	got := orders[0]
	if got.ID != want.ID {
		t.Errorf("id: got %s want %s", got.ID, want.ID)
	}
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp: got %v want %v", got.Timestamp, want.Timestamp)
	}
	if got.Customer != want.Customer {
		t.Errorf("customer: got %+v want %+v", got.Customer, want.Customer)
	}
	if !got.Total.Equal(want.Total) {
		t.Errorf("total: got %s want %s", got.Total, want.Total)
	}
	if got.PaymentID == nil || *got.PaymentID != *want.PaymentID {
		t.Errorf("payment id: got %v want %v", got.PaymentID, want.PaymentID)
	}
	if got.Status != "confirmed" {
		t.Errorf("status: got %s", got.Status)
	}
	if len(got.Items) != 1 || got.Items[0]["name"] != want.Items[0]["name"] {
		t.Errorf("items: got %+v want %+v", got.Items, want.Items)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"), testLogger())

	orders, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty collection, got %d orders", len(orders))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path, testLogger())

	// corrupt content is swallowed and presented as empty
	orders, err := s.LoadAll(ctx)
	if err != nil || len(orders) != 0 {
		t.Fatalf("expected empty collection and nil error, got %d orders, err %v", len(orders), err)
	}

	// and the next append starts a fresh, parsable file
	if err := s.Append(ctx, fakeOrder("ORD20250101120001")); err != nil {
		t.Fatalf("append after corruption: %v", err)
	}
	orders, _ = s.LoadAll(ctx)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestFileStoreConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	s := NewFileStore(path, testLogger())

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Append(ctx, fakeOrder(fmt.Sprintf("ORD%014d", i))); err != nil {
				t.Errorf("append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	// the mutex guards the read-modify-write window, so no append is lost
	orders, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(orders) != n {
		t.Fatalf("expected %d orders, got %d", n, len(orders))
	}

	seen := make(map[string]bool, n)
	for _, o := range orders {
		if seen[o.ID] {
			t.Fatalf("duplicate order id %s", o.ID)
		}
		seen[o.ID] = true
	}

	// the file on disk stays a valid JSON array
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("orders file is not a parsable JSON array: %v", err)
	}
}
