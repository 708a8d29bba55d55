package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is a confirmed purchase. Records are append-only: once stored they are
// never updated or deleted.
type Order struct {
	ID            string           `json:"id" gorm:"primaryKey;size:32;not null"`
	Timestamp     time.Time        `json:"timestamp" gorm:"index;not null"`
	Customer      Customer         `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Items         []map[string]any `json:"items" gorm:"serializer:json"`
	Total         decimal.Decimal  `json:"total" gorm:"type:decimal(12,2);not null"`
	PaymentMethod string           `json:"payment_method" gorm:"size:16;not null"` // "cod" or "online"
	PaymentID     *string          `json:"payment_id" gorm:"size:64"`              // gateway payment id, nil for COD
	Status        string           `json:"status" gorm:"size:32;not null"`
}

// GatewayOrder is the provider-side payment intent. It is owned by Razorpay and
// never persisted here; only its id travels back to the storefront.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
