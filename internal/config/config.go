package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	Database DatabaseConfig
	Geocoder GeocoderConfig

	// SessionTTL is how long an abandoned conversation is kept.
	// Zero disables expiry.
	SessionTTL time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// GeocoderConfig holds Nominatim lookup settings
type GeocoderConfig struct {
	BaseURL string
	Country string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "donorbot"),
			User:     getEnv("DB_USER", "donorbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Geocoder: GeocoderConfig{
			BaseURL: getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			Country: getEnv("GEOCODER_COUNTRY", "Bangladesh"),
			Timeout: time.Duration(getEnvInt("GEOCODER_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=5",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
