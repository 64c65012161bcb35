package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port            string
	DatabasePath    string
	MigrationsPath  string
	AllowedOrigins  []string
	SessionTTLHours int
}

// Load reads configuration from environment variables with sensible
// defaults. A local .env file is loaded first when present; a missing file
// is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DATABASE_PATH", "./events.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/database/migrations"),
		AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
