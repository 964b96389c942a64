package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	IsProduction bool
	RateLimit    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "1000-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		DatabaseName: viper.GetString("DATABASE_NAME"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set. Starting without a database.")
	}
	if cfg.DatabaseName == "" {
		log.Println("Warning: DATABASE_NAME environment variable not set. Starting without a database.")
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	return cfg, nil
}
