package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Collaborator base URLs
	GroupManagerURL    string `mapstructure:"GROUP_MANAGER_URL"`
	CurrencyManagerURL string `mapstructure:"CURRENCY_MANAGER_URL"`
	AttachmentStoreURL string `mapstructure:"ATTACHMENT_STORE_URL"`

	ClientTimeout time.Duration

	// RateLimit is a limiter format string, e.g. "100-M" for 100 requests
	// per minute per client IP.
	RateLimit string

	// RejectNoopUpdates makes updates that change nothing fail validation
	// instead of being accepted as a reopen-only edit.
	RejectNoopUpdates bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("GROUP_MANAGER_URL", "http://group-manager")
	viper.SetDefault("CURRENCY_MANAGER_URL", "http://currency-manager")
	viper.SetDefault("ATTACHMENT_STORE_URL", "http://attachment-store")
	viper.SetDefault("CLIENT_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REJECT_NOOP_UPDATES", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.GroupManagerURL = viper.GetString("GROUP_MANAGER_URL")
	cfg.CurrencyManagerURL = viper.GetString("CURRENCY_MANAGER_URL")
	cfg.AttachmentStoreURL = viper.GetString("ATTACHMENT_STORE_URL")

	clientTimeoutStr := viper.GetString("CLIENT_TIMEOUT")
	clientTimeout, err := time.ParseDuration(clientTimeoutStr)
	if err != nil {
		clientTimeout = 10 * time.Second
		if clientTimeoutStr != "" {
			log.Printf("Warning: Invalid value for CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", clientTimeoutStr, clientTimeout)
		}
	}
	cfg.ClientTimeout = clientTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.RejectNoopUpdates = viper.GetBool("REJECT_NOOP_UPDATES")

	return cfg, nil
}
