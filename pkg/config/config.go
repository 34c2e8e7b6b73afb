package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// Hosted Postgres convenience:
	// - DATABASE_URL: runtime connection (often PgBouncer/pooler)
	// - DIRECT_URL: direct connection for migrations
	DatabaseURL string
	DirectURL   string

	DB DBConfig

	Staff    StaffConfig
	Shipping ShippingConfig

	// TrackAllowedOrigins is a comma-separated allowlist of origins allowed to
	// call the public order-tracking endpoints. Example:
	//   https://www.belmobile.be,http://localhost:5173
	TrackAllowedOrigins []string

	// DefaultLang is the fallback language for status labels ("fr", "nl", "en").
	DefaultLang string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type StaffConfig struct {
	// JWTSecret signs and verifies staff session tokens (HS256).
	JWTSecret string
	Issuer    string

	// DevFallbackEmail lets local dev skip token auth via the X-Staff-Email
	// header. Never honored when APP_ENV=prod.
	DevFallbackEmail string
}

type ShippingConfig struct {
	// WebhookSecret verifies carrier webhook signatures (HMAC-SHA256).
	WebhookSecret string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Cloud Run sets PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8081"
		}
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DirectURL:      os.Getenv("DIRECT_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "belmobile"),
			User:     env("DB_USER", "belmobile"),
			Password: env("DB_PASSWORD", "belmobile"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		Staff: StaffConfig{
			JWTSecret:        os.Getenv("STAFF_JWT_SECRET"),
			Issuer:           env("STAFF_JWT_ISSUER", "belmobile-backend"),
			DevFallbackEmail: os.Getenv("STAFF_DEV_EMAIL"),
		},
		Shipping: ShippingConfig{
			WebhookSecret: os.Getenv("SHIPPING_WEBHOOK_SECRET"),
		},

		TrackAllowedOrigins: envList("TRACK_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173"),
		DefaultLang:         env("DEFAULT_LANG", "fr"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ',' {
			s := v[start:i]
			start = i + 1
			// trim spaces
			for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r') {
				s = s[1:]
			}
			for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t' || s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
				s = s[:len(s)-1]
			}
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
