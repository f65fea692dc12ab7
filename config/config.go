package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	JWTSecret      string
	StorageBackend string // cookie, memory, file or postgres
	StorageFile    string
	DatabaseURL    string
	CatalogURL     string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		JWTSecret:      getEnv("JWT_SECRET", "storefront-dev-secret"),
		StorageBackend: getEnv("STORAGE_BACKEND", "cookie"),
		StorageFile:    getEnv("STORAGE_FILE", "storefront-kv.json"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		CatalogURL:     getEnv("CATALOG_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
