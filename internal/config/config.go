// Package config reads the service configuration from the environment,
// after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-configured value of the API server.
type Config struct {
	Port    string
	AppEnv  string
	BaseURL string
	// SiteURL is the public frontend origin used in profile links.
	SiteURL string

	DatabaseDSN string
	UploadDir   string

	AdminEmail      string
	AdminPassword   string
	SessionSecret   string
	SessionTTL      time.Duration
	CORSAllowOrigin string

	ResendAPIKey     string
	EmailFrom        string
	AdminNotifyEmail string
	AlwaysCCAdmin    bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SiteName string
}

// LoadDotEnv loads .env into the process environment. A missing file is not
// an error; the system environment is used as is.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load builds a Config from environment variables, applying defaults.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("ADMIN_SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_SESSION_TTL: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	alwaysCC, err := strconv.ParseBool(getEnvOrDefault("EMAIL_ALWAYS_CC_ADMIN", "true"))
	if err != nil {
		return nil, fmt.Errorf("EMAIL_ALWAYS_CC_ADMIN: %w", err)
	}

	port := getEnvOrDefault("PORT", "8080")
	baseURL := strings.TrimRight(getEnvOrDefault("BASE_URL", "http://localhost:"+port), "/")
	cfg := &Config{
		Port:    port,
		AppEnv:  getEnvOrDefault("APP_ENV", "production"),
		BaseURL: baseURL,
		SiteURL: strings.TrimRight(getEnvOrDefault("SITE_URL", baseURL), "/"),

		DatabaseDSN: os.Getenv("DB_DSN_PRIMARY"),
		UploadDir:   getEnvOrDefault("UPLOAD_DIR", "./uploads"),

		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      ttl,
		CORSAllowOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		EmailFrom:        getEnvOrDefault("EMAIL_FROM", "Business Directory <no-reply@example.com>"),
		AdminNotifyEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
		AlwaysCCAdmin:    alwaysCC,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SiteName: getEnvOrDefault("SITE_NAME", "Business Directory"),
	}
	return cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.DatabaseDSN == "":
		return errors.New("DB_DSN_PRIMARY is required")
	case c.AdminEmail == "" || c.AdminPassword == "":
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	case len(c.SessionSecret) < 32:
		return errors.New("SESSION_SECRET must be at least 32 bytes")
	case c.SessionTTL <= 0:
		return errors.New("ADMIN_SESSION_TTL must be positive")
	case c.AlwaysCCAdmin && c.AdminNotifyEmail == "":
		return errors.New("ADMIN_NOTIFY_EMAIL is required when EMAIL_ALWAYS_CC_ADMIN is true")
	}
	return nil
}

// IsDevelopment reports whether APP_ENV selects development behaviour.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnvOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
