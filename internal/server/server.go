package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"watch-store-backend/internal/dto"
	"watch-store-backend/internal/handler"
	authmw "watch-store-backend/internal/middleware"
	"watch-store-backend/internal/service"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	adminHandler    *handler.AdminHandler
	authService     service.AuthService
}

func NewServer(checkoutService service.CheckoutService, authService service.AuthService, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errorHandler(log)

	// storefront
	e.File("/", "web/index.html")
	e.Static("/static", "web/static")

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		adminHandler:    handler.NewAdminHandler(authService),
		authService:     authService,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", s.checkoutHandler.Health)
	api.POST("/create-order", s.checkoutHandler.CreateOrder)
	api.POST("/verify-payment", s.checkoutHandler.VerifyPayment)
	api.POST("/save-order", s.checkoutHandler.SaveOrder)

	api.POST("/admin/login", s.adminHandler.Login)
	api.GET("/orders", s.checkoutHandler.ListOrders, authmw.RequireAdmin(s.authService))
}

// errorHandler renders every failure that escapes a handler as the JSON error
// shape the storefront expects.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if status == http.StatusNotFound {
				message = "Not found"
			} else if msg, isString := httpErr.Message.(string); isString {
				message = msg
			}
		} else {
			log.Error("unhandled error", "uri", c.Request().RequestURI, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, &dto.ErrorResponse{Error: message})
	}
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
