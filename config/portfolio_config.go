package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all process configuration, loaded once at startup and passed
// explicitly to component constructors.
type Config struct {
	Port        string
	Environment string

	// Database
	MongoDBURL  string
	MongoDBName string

	// Routing
	APIPrefix string

	// Auth
	JWTSecret     string
	TokenPassword string

	// Uploads
	UploadDir string

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8010"),
		Environment: getEnv("ENV", "development"),

		MongoDBURL:  getEnv("CONNECTION_STRING", ""),
		MongoDBName: getEnv("MONGODB_DATABASE", "portfolio"),

		APIPrefix: getEnv("API_URL", "/api/v1"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenPassword: getEnv("TOKEN_PASSWORD", ""),

		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"*"}),
	}

	if cfg.MongoDBURL == "" {
		return nil, fmt.Errorf("CONNECTION_STRING is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
