package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	GoogleScriptURL     string
	GoogleScriptToken   string
	// Storefront base URL used to build checkout success/cancel links
	Domain string
	// Comma-separated allow-list of browser origins for CORS
	AllowedOrigins string
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server port
	HTTPPort string
	// Runtime environment: dev or prod
	AppEnv string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	// Get required environment variables
	requiredVars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true},
		{"StripeWebhookSecret", "STRIPE_WEBHOOK_SECRET", "Stripe Webhook Secret", true},
		{"GoogleScriptURL", "GOOGLE_SCRIPT_URL", "Google Script URL", true},
		{"GoogleScriptToken", "GOOGLE_SCRIPT_TOKEN", "Google Script Token", true},
		// Optional storefront and server settings
		{"Domain", "DOMAIN", "Storefront Domain", false},
		{"AllowedOrigins", "ALLOWED_ORIGINS", "Allowed CORS Origins", false},
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"AppEnv", "APP_ENV", "Application Environment", false},
	}

	for _, v := range requiredVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.Domain == "" {
		config.Domain = "https://nexuscopier.com"
	}
	if config.AllowedOrigins == "" {
		config.AllowedOrigins = "https://nexuscopier.com,https://www.nexuscopier.com"
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "4242"
	}
	if config.AppEnv == "" {
		config.AppEnv = "prod"
	}

	return config, nil
}

// Origins returns the CORS allow-list as a cleaned slice.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
