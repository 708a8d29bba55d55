package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"watch-store-backend/internal/dto"
	"watch-store-backend/internal/service"
)

// RequireAdmin rejects requests that do not carry a valid admin bearer token.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, &dto.ErrorResponse{Error: "Missing bearer token"})
			}

			if err := authService.ValidateToken(token); err != nil {
				return c.JSON(http.StatusUnauthorized, &dto.ErrorResponse{Error: "Invalid or expired token"})
			}

			return next(c)
		}
	}
}
