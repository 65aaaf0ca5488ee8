package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev_only_change_me"

// Config holds all configuration for the application
type Config struct {
	AppMode           string
	Port              string
	Database          DatabaseConfig
	JWT               JWTConfig
	Admin             AdminConfig
	AllowedOrigins    string
	PublicAppURL      string
	RequestTimeout    time.Duration
	ReconcileSchedule string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	DSN      string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// Expiry returns the session token lifetime
func (j JWTConfig) Expiry() time.Duration {
	return time.Duration(j.ExpiryHours) * time.Hour
}

// AdminConfig holds the canonical admin created at startup
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:           appMode,
		Port:              getEnv("PORT", "5000"),
		Database:          loadDatabaseConfig(),
		JWT:               loadJWTConfig(appMode),
		Admin:             loadAdminConfig(appMode),
		AllowedOrigins:    loadAllowedOrigins(appMode),
		PublicAppURL:      strings.TrimRight(getEnv("PUBLIC_APP_URL", "http://localhost:5173"), "/"),
		RequestTimeout:    time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
		ReconcileSchedule: strings.TrimSpace(os.Getenv("RECONCILE_SCHEDULE")),
	}
	if _, set := os.LookupEnv("RECONCILE_SCHEDULE"); !set {
		config.ReconcileSchedule = "@every 1h"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s, DB: %s]", appMode, config.Database.Driver)
	return config, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "memory":
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'memory')", c.Database.Driver)
	}

	if c.IsProd() {
		if c.JWT.Secret == "" {
			return fmt.Errorf("JWT_SECRET is required in prod mode")
		}
		if c.Admin.Password == "" {
			return fmt.Errorf("ADMIN_PASSWORD is required in prod mode")
		}
		if c.Database.Driver == "memory" {
			return fmt.Errorf("DB_DRIVER 'memory' is not allowed in prod mode, data would be lost on restart")
		}
	}
	return nil
}

// loadDatabaseConfig loads database config
func loadDatabaseConfig() DatabaseConfig {
	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", "mysql")))

	defaultPort := "3306"
	if driver == "postgres" {
		defaultPort = "5432"
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", defaultPort),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "blood_donation"),
		DSN:      os.Getenv("DB_DSN"),
	}
}

// loadJWTConfig loads JWT config
func loadJWTConfig(mode string) JWTConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" && mode == "dev" {
		secret = devJWTSecret
	}

	hours := getEnvInt("JWT_EXPIRY_HOURS", 24)
	if hours < 1 {
		hours = 24
	}

	return JWTConfig{
		Secret:      secret,
		ExpiryHours: hours,
	}
}

// loadAdminConfig loads the bootstrap admin credentials
func loadAdminConfig(mode string) AdminConfig {
	pass := os.Getenv("ADMIN_PASSWORD")
	if pass == "" && mode == "dev" {
		pass = "admin123456"
	}

	return AdminConfig{
		Email:    strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", "admin@lifeline.local"))),
		Password: pass,
	}
}

// loadAllowedOrigins returns allowed origins for CORS
func loadAllowedOrigins(mode string) string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if mode == "dev" {
			return "*"
		}
		return "https://www.lifelinebloodcenter.org"
	}
	return origins
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable, falling back on bad input
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return value
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}
