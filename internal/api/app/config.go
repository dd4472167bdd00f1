package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TokenSecret string        // Required: HMAC secret for session tokens (min 32 bytes)
	TokenIssuer string        // Optional: issuer claim for tokens (default: prioritypro)
	TokenTTL    time.Duration // Optional: session token lifetime (default: 24h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./tasks.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A .env file is a dev convenience; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return Config{
		TokenSecret:         os.Getenv("TASKS_TOKEN_SECRET"),
		TokenIssuer:         getEnvOrDefault("TASKS_TOKEN_ISSUER", "prioritypro"),
		TokenTTL:            getEnvDurationOrDefault("TASKS_TOKEN_TTL", 24*time.Hour),
		DatabaseFile:        getEnvOrDefault("TASKS_DATABASE_FILE", "tasks.db"),
		PepperFile:          getEnvOrDefault("TASKS_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}

	return defaultValue
}
