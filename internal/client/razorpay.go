package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"watch-store-backend/internal/config"
	"watch-store-backend/internal/model"
)

var (
	// ErrInvalidAmount is returned before any network call when the requested
	// amount is not a positive number of minor units.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotConfigured is returned when the process started without real
	// gateway credentials. Callers should offer the COD flow instead.
	ErrNotConfigured = errors.New("payment gateway not configured")
)

// GatewayError carries a failure reported by the provider itself.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay error %d: %s", e.StatusCode, e.Message)
}

type RazorpayClient interface {
	// CreateOrder registers a payment intent with Razorpay. amount is in
	// paise; currency defaults to INR when empty.
	CreateOrder(ctx context.Context, amount int64, currency string) (*model.GatewayOrder, error)
	Configured() bool
	KeyID() string
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
	configured bool
}

func NewRazorpayClient(cfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		configured: cfg.Configured(),
	}
}

func (c *razorpayClientImpl) Configured() bool {
	return c.configured
}

func (c *razorpayClientImpl) KeyID() string {
	return c.keyID
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amount int64, currency string) (*model.GatewayOrder, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !c.configured {
		return nil, ErrNotConfigured
	}
	if currency == "" {
		currency = "INR"
	}

	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  fmt.Sprintf("order_%s", time.Now().Format("20060102150405")),
		"notes": map[string]string{
			"shop": "Ashok Watch Company",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorDescription(resp.Body),
		}
	}

	var order model.GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode razorpay response: %w", err)
	}

	return &order, nil
}

// extractErrorDescription pulls the human-readable message out of Razorpay's
// error envelope, falling back to the raw body.
func extractErrorDescription(r io.Reader) string {
	b, _ := io.ReadAll(r)

	var envelope struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(b, &envelope); err == nil && envelope.Error.Description != "" {
		return envelope.Error.Description
	}

	return string(b)
}
