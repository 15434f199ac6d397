package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	// StoreBackend selects the persistence adapter: "pgsql" or "memory".
	// The memory backend keeps whole-collection snapshots in process and
	// exists for demos and tests.
	StoreBackend string

	SessionExpiryDuration time.Duration

	ResetTokenSecret         string
	ResetTokenExpiryDuration time.Duration
	ResetTokenIssuer         string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", "pgsql")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "168h")
	viper.SetDefault("RESET_TOKEN_SECRET", "default_insecure_reset_secret_please_change_this")
	viper.SetDefault("RESET_TOKEN_EXPIRY_DURATION", "15m")
	viper.SetDefault("RESET_TOKEN_ISSUER", "abushala-backend")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.StoreBackend = viper.GetString("STORE_BACKEND")
	if cfg.DatabaseURL == "" && cfg.StoreBackend == "pgsql" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	sessionExpiryStr := viper.GetString("SESSION_EXPIRY_DURATION")
	sessionExpiry, err := time.ParseDuration(sessionExpiryStr)
	if err != nil {
		sessionExpiry = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for SESSION_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", sessionExpiryStr, sessionExpiry)
	}
	cfg.SessionExpiryDuration = sessionExpiry

	cfg.ResetTokenSecret = viper.GetString("RESET_TOKEN_SECRET")
	if cfg.ResetTokenSecret == "default_insecure_reset_secret_please_change_this" {
		log.Println("Warning: RESET_TOKEN_SECRET not set, using default insecure secret. THIS IS NOT FOR PRODUCTION.")
	}

	resetExpiryStr := viper.GetString("RESET_TOKEN_EXPIRY_DURATION")
	resetExpiry, err := time.ParseDuration(resetExpiryStr)
	if err != nil {
		resetExpiry = 15 * time.Minute
		log.Printf("Warning: Invalid value for RESET_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", resetExpiryStr, resetExpiry)
	}
	cfg.ResetTokenExpiryDuration = resetExpiry
	cfg.ResetTokenIssuer = viper.GetString("RESET_TOKEN_ISSUER")

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
