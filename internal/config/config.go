package config

import "strings"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	SecretKey   string `env:"SECRET_KEY" envDefault:"ashok-watch-company-secret-key-2025"`

	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Store    Store    `envPrefix:"STORE_"`
	Admin    Admin    `envPrefix:"ADMIN_"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID" envDefault:"rzp_test_YOUR_KEY_ID"`
	KeySecret  string `env:"KEY_SECRET" envDefault:"YOUR_KEY_SECRET"`
}

// Configured reports whether real credentials were supplied. The dashboard
// placeholders contain "YOUR_KEY"; with those the process runs in COD-only mode.
func (r Razorpay) Configured() bool {
	return r.KeyID != "" && !strings.Contains(r.KeyID, "YOUR_KEY")
}

type Store struct {
	// Driver selects the order store backend: "file" or "sqlite".
	Driver       string `env:"DRIVER" envDefault:"file"`
	OrdersFile   string `env:"ORDERS_FILE" envDefault:"orders.json"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"orders.db"`
}

type Admin struct {
	// Password guards the admin login endpoint. Empty disables admin access
	// entirely, including the order listing.
	Password string `env:"PASSWORD"`
	TokenTTL string `env:"TOKEN_TTL" envDefault:"24h"`
}

type Environment struct {
	Name  string `env:"ENVIRONMENT" envDefault:"development"`
	Debug bool   `env:"DEBUG" envDefault:"true"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"5000"`
}
