package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // When set, rate limit counters are shared through Redis

	// Generation
	GenerationDelay time.Duration // Simulated processing time, 0 disables

	// Site Branding
	SiteTitle                string // env: SITE_TITLE, default: "MediaLens"
	SiteTagline              string // env: SITE_TAGLINE, default: "Content ideas and media analysis for creators."
	SiteFooter               string // env: SITE_FOOTER, default: "MediaLens · Stay connected"
	EnableAnimatedBackground bool   // env: ENABLE_ANIMATED_BACKGROUND

	// Categories shown in the idea form. Populated from the YAML config file
	// or DefaultCategories.
	Catalog *YAMLConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		TLSEnabled:      getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:     getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:      getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX", 100),
		RedisURL:        getEnv("REDIS_URL", ""),
		GenerationDelay: getEnvAsDuration("GENERATION_DELAY", 2500*time.Millisecond),

		SiteTitle:                getEnv("SITE_TITLE", "MediaLens"),
		SiteTagline:              getEnv("SITE_TAGLINE", "Content ideas and media analysis for creators."),
		SiteFooter:               getEnv("SITE_FOOTER", "MediaLens · Stay connected"),
		EnableAnimatedBackground: getEnv("ENABLE_ANIMATED_BACKGROUND", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s %q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}

// getEnvAsDuration accepts Go duration strings ("2.5s", "0") or a plain
// number of milliseconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("Invalid %s %q, using default %v", key, value, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Categories returns the categories to offer in the idea form.
func (c *Config) Categories() []CategoryConfig {
	return c.Catalog.GetCategories()
}
