package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"watch-store-backend/internal/client"
	"watch-store-backend/internal/config"
	"watch-store-backend/internal/logger"
	"watch-store-backend/internal/server"
	"watch-store-backend/internal/service"
	"watch-store-backend/internal/signature"
	"watch-store-backend/internal/store"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Environment.Debug && cfg.Log.Level == "info" {
		cfg.Log.Level = "debug"
	}

	log := logger.New(cfg.Log)

	orders, err := newOrderStore(cfg, log)
	if err != nil {
		log.Error("failed to open order store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}

	gateway := client.NewRazorpayClient(&cfg.Razorpay)
	verifier := signature.NewVerifier(cfg.Razorpay.KeySecret)

	checkoutService := service.NewCheckoutService(gateway, verifier, orders)
	authService := service.NewAuthService(cfg.SecretKey, &cfg.Admin)

	srv := server.NewServer(checkoutService, authService, log)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	paymentMode := "COD only (gateway not configured)"
	if gateway.Configured() {
		paymentMode = "Razorpay configured"
	}
	log.Info("Ashok Watch Company online store server starting",
		"addr", serverAddr,
		"payment_gateway", paymentMode,
		"store_driver", cfg.Store.Driver,
	)

	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}

func newOrderStore(cfg *config.Config, log *slog.Logger) (store.OrderStore, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		return store.NewSqliteStore(cfg.Store.DatabasePath)
	default:
		return store.NewFileStore(cfg.Store.OrdersFile, log), nil
	}
}
