package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the service reads from the environment.
// Loaded once in main and handed to the packages that need it, so nothing
// reaches for os.Getenv at request time.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret     string
	AdminPasscode string

	FirebaseCredentialsJSON string
	FirebaseProjectID       string
	SuperAdminEmail         string

	PaystackSecretKey string
	PaystackBaseURL   string
	Currency          string

	// Shipping rule: orders at or above the threshold ship free,
	// everything below pays the flat fee. Amounts are in Naira.
	FreeShippingThreshold float64
	FlatShippingFee       float64

	AdminSessionTTL      time.Duration
	SessionSweepInterval time.Duration
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL", ""),

		JWTSecret:     getenv("JWT_SECRET", ""),
		AdminPasscode: getenv("ADMIN_PASSCODE", ""),

		FirebaseCredentialsJSON: getenv("FIREBASE_CREDENTIALS_JSON", ""),
		FirebaseProjectID:       getenv("FIREBASE_PROJECT_ID", ""),
		SuperAdminEmail:         getenv("SUPER_ADMIN_EMAIL", ""),

		PaystackSecretKey: getenv("PAYSTACK_SECRET_KEY", ""),
		PaystackBaseURL:   getenv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		Currency:          getenv("CURRENCY", "NGN"),

		FreeShippingThreshold: getenvFloat("FREE_SHIPPING_THRESHOLD", 50000),
		FlatShippingFee:       getenvFloat("FLAT_SHIPPING_FEE", 3000),

		AdminSessionTTL:      getenvDuration("ADMIN_SESSION_TTL", 12*time.Hour),
		SessionSweepInterval: getenvDuration("SESSION_SWEEP_INTERVAL", 30*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
