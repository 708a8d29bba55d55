package service

import (
	"context"
	"fmt"
	"time"

	"watch-store-backend/internal/client"
	"watch-store-backend/internal/dto"
	"watch-store-backend/internal/model"
	"watch-store-backend/internal/signature"
	"watch-store-backend/internal/store"
)

type CheckoutService interface {
	// CreateGatewayOrder registers a payment intent with the gateway so the
	// storefront can open the provider's checkout widget.
	CreateGatewayOrder(ctx context.Context, amount int64) (*dto.CreateOrderResponse, error)

	// VerifyPayment authenticates a signed payment callback.
	VerifyPayment(orderID, paymentID, sig string) error

	// SaveOrder persists a confirmed order (online-paid or COD) and returns
	// the generated order id.
	SaveOrder(ctx context.Context, req *dto.SaveOrderRequest) (string, error)

	ListOrders(ctx context.Context) ([]model.Order, error)

	GatewayConfigured() bool
}

type checkoutServiceImpl struct {
	gateway  client.RazorpayClient
	verifier *signature.Verifier
	orders   store.OrderStore
	now      func() time.Time
}

func NewCheckoutService(gateway client.RazorpayClient, verifier *signature.Verifier, orders store.OrderStore) CheckoutService {
	return &checkoutServiceImpl{
		gateway:  gateway,
		verifier: verifier,
		orders:   orders,
		now:      time.Now,
	}
}

func (s *checkoutServiceImpl) CreateGatewayOrder(ctx context.Context, amount int64) (*dto.CreateOrderResponse, error) {
	order, err := s.gateway.CreateOrder(ctx, amount, "INR")
	if err != nil {
		return nil, fmt.Errorf("gateway create order: %w", err)
	}

	return &dto.CreateOrderResponse{
		Success:  true,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

func (s *checkoutServiceImpl) VerifyPayment(orderID, paymentID, sig string) error {
	return s.verifier.Verify(orderID, paymentID, sig)
}

func (s *checkoutServiceImpl) SaveOrder(ctx context.Context, req *dto.SaveOrderRequest) (string, error) {
	now := s.now()

	order := model.Order{
		ID:        "ORD" + now.Format("20060102150405"),
		Timestamp: now,
		Customer: model.Customer{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		},
		Items:         req.Items,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
		Status:        "confirmed",
	}
	if order.Items == nil {
		order.Items = []map[string]any{}
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return "", fmt.Errorf("append order: %w", err)
	}

	return order.ID, nil
}

func (s *checkoutServiceImpl) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.LoadAll(ctx)
}

func (s *checkoutServiceImpl) GatewayConfigured() bool {
	return s.gateway.Configured()
}
