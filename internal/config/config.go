package config

import (
	"os"
)

// defaultSecret mirrors the historical seed deployments. Override it with
// HELPDESK_SECRET in anything resembling production: rotating the secret
// invalidates every previously issued token.
const defaultSecret = "cambiame_por_una_clave_segura"

type Config struct {
	DBPath   string
	Secret   string
	Port     string
	GinMode  string
	LogLevel string
}

func Load() *Config {
	return &Config{
		DBPath:   getEnv("HELPDESK_DB_PATH", "helpdesk.db"),
		Secret:   getEnv("HELPDESK_SECRET", defaultSecret),
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
