package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Wallet API port
	StorageBackend string // Persistence variant: "local" or "remote"
	KVDriver       string // Key/value driver: "file" or "redis"
	KVFile         string // Path of the file-backed key/value store
	RedisAddr      string // Redis server address
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	APIBaseURL     string // Document store base URL for the remote variant
	StorePort      string // Mock document store port
	StoreFile      string // Mock document store JSON file
	IsProd         bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),                      // Wallet API port
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),              // Persistence variant
		KVDriver:       getEnv("KV_DRIVER", "file"),                     // Key/value driver
		KVFile:         getEnv("KV_FILE", "wallet.json"),                // File-backed key/value store path
		RedisAddr:      os.Getenv("REDIS_ADDR"),                         // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                         // Redis password
		RedisDB:        redisDB,                                         // Redis database number
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000"), // Document store base URL
		StorePort:      getEnv("STORE_PORT", "5000"),                    // Mock document store port
		StoreFile:      getEnv("STORE_FILE", "db.json"),                 // Mock document store JSON file
		IsProd:         os.Getenv("IS_PROD") == "true",                  // Is production environment
	}
}

// getEnv returns the environment variable or a fallback when it is unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v // Use the configured value
	}
	return fallback // Fall back to the default
}
