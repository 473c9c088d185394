package config

import (
	"os"
)

// Config holds all runtime configuration, read once at startup.
type Config struct {
	Port          string
	DBDriver      string // "sqlite" or "postgres"
	DBDSN         string
	JWTSecret     string
	CreateAdmin   bool
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBDSN:         getEnv("DB_DSN", "eventhub.db"),
		JWTSecret:     getEnv("JWT_SECRET", "dev_secret_change_me"),
		CreateAdmin:   getEnv("CREATE_ADMIN", "") == "true",
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
