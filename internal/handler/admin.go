package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"watch-store-backend/internal/dto"
	"watch-store-backend/internal/service"
)

type AdminHandler struct {
	authService service.AuthService
}

func NewAdminHandler(authService service.AuthService) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, &dto.AdminLoginResponse{Token: token})
}
