package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Catalog  CatalogConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

// StoreConfig describes the restaurant's ordering channel
type StoreConfig struct {
	DeliveryFee   int64  // whole currency units, charged once per non-empty order
	WhatsAppPhone string // international format, digits only
	WhatsAppURL   string
	Locale        string // BCP 47 tag used to group amounts
}

// CatalogConfig selects the menu source; no URLs means the compiled-in menu
type CatalogConfig struct {
	URLs         []string
	FetchTimeout int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			AllowedOrigins:  getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			DeliveryFee:   getEnvAsInt64("DELIVERY_FEE", 4000),
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", "573001234567"),
			WhatsAppURL:   getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
			Locale:        getEnv("LOCALE", "es"),
		},
		Catalog: CatalogConfig{
			URLs:         getEnvAsSlice("CATALOG_URLS", nil),
			FetchTimeout: getEnvAsInt("CATALOG_FETCH_TIMEOUT", 30),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Store.DeliveryFee < 0 {
		return fmt.Errorf("DELIVERY_FEE must not be negative, got %d", c.Store.DeliveryFee)
	}

	if c.Store.WhatsAppPhone == "" {
		return fmt.Errorf("WHATSAPP_PHONE is required")
	}
	for _, r := range c.Store.WhatsAppPhone {
		if r < '0' || r > '9' {
			return fmt.Errorf("WHATSAPP_PHONE must contain digits only: %s", c.Store.WhatsAppPhone)
		}
	}

	if _, err := language.Parse(c.Store.Locale); err != nil {
		return fmt.Errorf("invalid LOCALE %q: %w", c.Store.Locale, err)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
