package config

import (
	"os"
	"strconv"
	"time"
)

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"
)

// Config is built once at process start and injected into the services that
// need it. Fields are never mutated after Load.

type Config struct {
	Port          int
	WebhookSecret string

	IntentsTable     string
	OrderClaimsTable string

	Mpesa MpesaConfig
}

// MpesaConfig carries the Daraja credentials and endpoints.
//
// Environment selects the base URL: "production" hits the live API, anything
// else stays on the sandbox.
type MpesaConfig struct {
	Environment    string
	BaseURL        string
	ShortCode      string
	Passkey        string
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string
	Timezone       string
	Timeout        time.Duration
}

func Load() Config {
	env := getenvDefault("MPESA_ENVIRONMENT", "sandbox")
	baseURL := sandboxBaseURL
	if env == "production" {
		baseURL = productionBaseURL
	}

	return Config{
		Port:             getenvInt("PORT", 8080),
		WebhookSecret:    os.Getenv("WEBHOOK_SECRET"),
		IntentsTable:     getenvDefault("INTENTS_TABLE", "payment_intents"),
		OrderClaimsTable: getenvDefault("ORDER_CLAIMS_TABLE", "payment_orders"),
		Mpesa: MpesaConfig{
			Environment:    env,
			BaseURL:        baseURL,
			ShortCode:      os.Getenv("MPESA_SHORTCODE"),
			Passkey:        os.Getenv("MPESA_PASSKEY"),
			ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
			CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
			Timezone:       getenvDefault("MPESA_TIMEZONE", "Africa/Nairobi"),
			Timeout:        30 * time.Second,
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
