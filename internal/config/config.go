// Package config loads process configuration from the environment, with a
// .env file picked up in development.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration.
type Config struct {
	Port string

	// DBDriver selects the persistence backend: "postgres" for the shared
	// remote store, "sqlite" for a local single-file store.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	JWTSecret        string
	JWTExpirationDur time.Duration
}

var appConfig *Config

// Load reads the environment into a Config and caches it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "planner"),
		DBPassword: getEnv("DB_PASSWORD", "planner"),
		DBName:     getEnv("DB_NAME", "planner"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "planner.db"),

		JWTSecret:        getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTExpirationDur: getDuration("JWT_EXPIRES_IN", 24*time.Hour),
	}

	appConfig = config
	return config, nil
}

// Get returns the cached configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
