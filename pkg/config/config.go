package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	IsProduction     bool
	SQLitePath       string
	RateLimit        string
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SQLITE_PATH", "costbook.db")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		SQLitePath:       viper.GetString("SQLITE_PATH"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		CORSAllowOrigins: viper.GetStringSlice("CORS_ALLOW_ORIGINS"),
	}

	return cfg, nil
}
