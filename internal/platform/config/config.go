package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StoreDriver    string
	MigrationsPath string
	SeedFile       string

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	// API key access for service callers. Empty APIKeyHash disables it.
	APIKeyHash       string
	APIKeyActorID    string
	APIKeyActorLabel string

	RabbitMQURL string
	EventsQueue string

	TxMaxAttempts     int
	TxInitialBackoff  time.Duration
	TxMaxBackoff      time.Duration
	RateLimit         string
	CORSAllowedOrigin []string
	DefaultCurrency   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "investment-admin")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("API_KEY_HASH", "")
	v.SetDefault("API_KEY_ACTOR_ID", "service")
	v.SetDefault("API_KEY_ACTOR_LABEL", "service@internal")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_QUEUE", "investment-events")
	v.SetDefault("TX_MAX_ATTEMPTS", 5)
	v.SetDefault("TX_INITIAL_BACKOFF", "25ms")
	v.SetDefault("TX_MAX_BACKOFF", "500ms")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEFAULT_CURRENCY", "USD")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		SeedFile:         v.GetString("SEED_FILE"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		APIKeyHash:       v.GetString("API_KEY_HASH"),
		APIKeyActorID:    v.GetString("API_KEY_ACTOR_ID"),
		APIKeyActorLabel: v.GetString("API_KEY_ACTOR_LABEL"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		EventsQueue:      v.GetString("EVENTS_QUEUE"),
		TxMaxAttempts:    v.GetInt("TX_MAX_ATTEMPTS"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		DefaultCurrency:  strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER is %q", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		if cfg.IsProduction {
			return nil, fmt.Errorf("STORE_DRIVER %q is not allowed in production", StoreDriverMemory)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION", time.Hour); err != nil {
		return nil, err
	}
	if cfg.TxInitialBackoff, err = parseDuration(v, "TX_INITIAL_BACKOFF", 25*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.TxMaxBackoff, err = parseDuration(v, "TX_MAX_BACKOFF", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.TxMaxAttempts < 1 {
		log.Printf("Warning: TX_MAX_ATTEMPTS must be at least 1 (got %d). Defaulting to 1.\n", cfg.TxMaxAttempts)
		cfg.TxMaxAttempts = 1
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigin = append(cfg.CORSAllowedOrigin, origin)
		}
	}

	if cfg.APIKeyHash == "" {
		log.Println("Warning: API_KEY_HASH not set. API key authentication is disabled.")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
