package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Config struct {
	Port        string
	DatabaseURL string

	// Secret shared with the external identity provider for token
	// verification and webhook authentication.
	JWTSecret             string
	JWTTTL                time.Duration
	IdentityWebhookSecret string

	// Secret shared with the payment processor for webhook signatures.
	PaymentWebhookSecret string

	CORSAllowedOrigins []string
	Currency           string

	SMTP SMTP
}

// Load reads configuration from the environment. A .env file is honored when
// present so local runs match the deployed setup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  envOrDefault("PORT", "8080"),
		DatabaseURL:           envOrDefault("DATABASE_URL", "quickstay.db"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTTTL:                24 * time.Hour,
		IdentityWebhookSecret: os.Getenv("IDENTITY_WEBHOOK_SECRET"),
		PaymentWebhookSecret:  os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		Currency:              envOrDefault("CURRENCY", "$"),
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envOrDefault("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("SENDER_EMAIL"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	} else {
		cfg.CORSAllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
