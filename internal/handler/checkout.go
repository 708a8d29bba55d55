package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"watch-store-backend/internal/client"
	"watch-store-backend/internal/dto"
	"watch-store-backend/internal/service"
	"watch-store-backend/internal/signature"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Health(c echo.Context) error {
	gateway := "not_configured"
	if h.checkoutService.GatewayConfigured() {
		gateway = "configured"
	}

	return c.JSON(http.StatusOK, &dto.HealthResponse{
		Status:         "ok",
		Message:        "Ashok Watch Company server is running!",
		PaymentGateway: gateway,
	})
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid amount")
	}

	resp, err := h.checkoutService.CreateGatewayOrder(ctx, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrInvalidAmount):
			return errorJSON(c, http.StatusBadRequest, "Invalid amount")
		case errors.Is(err, client.ErrNotConfigured):
			return errorJSON(c, http.StatusServiceUnavailable, "Payment gateway not configured. Please use COD.")
		default:
			var gwErr *client.GatewayError
			if errors.As(err, &gwErr) {
				return errorJSON(c, http.StatusInternalServerError, gwErr.Message)
			}
			return err
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Missing payment details")
	}

	err := h.checkoutService.VerifyPayment(req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, signature.ErrMissingField):
			return errorJSON(c, http.StatusBadRequest, "Missing payment details")
		case errors.Is(err, signature.ErrMismatch):
			return errorJSON(c, http.StatusBadRequest, "Payment verification failed")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, &dto.VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified successfully",
	})
}

func (h *CheckoutHandler) SaveOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SaveOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := h.checkoutService.SaveOrder(ctx, &req)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to save order")
	}

	return c.JSON(http.StatusOK, &dto.SaveOrderResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order saved successfully!",
	})
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.checkoutService.ListOrders(ctx)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to load orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, &dto.ErrorResponse{Error: message})
}
