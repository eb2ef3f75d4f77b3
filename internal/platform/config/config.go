package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// Optional nisab weight overrides in troy ounces. Zero means "use the
	// scholarly defaults baked into the settings registry".
	GoldNisabOz   decimal.Decimal
	SilverNisabOz decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("GOLD_NISAB_OZ", "")
	viper.SetDefault("SILVER_NISAB_OZ", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.GoldNisabOz = parseOptionalDecimal("GOLD_NISAB_OZ")
	cfg.SilverNisabOz = parseOptionalDecimal("SILVER_NISAB_OZ")

	return cfg, nil
}

func parseOptionalDecimal(key string) decimal.Decimal {
	raw := viper.GetString(key)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.Sign() <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Ignoring override.\n", key, raw)
		return decimal.Zero
	}
	return d
}
