package main

import (
	"context"                          // context package is needed for the Redis ping
	"log"                              // log package is needed for logging
	"wallet_tracker/internal/api"     // Custom package for API handlers
	"wallet_tracker/internal/config"  // Custom package for configuration
	"wallet_tracker/internal/kv"      // Custom package for key/value stores
	"wallet_tracker/internal/ledger"  // Custom package for the core ledger
	"wallet_tracker/internal/storage" // Custom package for persistence variants

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the wallet API server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup the key/value store used for client-side persistence
	var store kv.Store
	if cfg.KVDriver == "redis" {
		// Setup Redis client
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		store = kv.NewRedisStore(redisClient) // Redis-backed key/value store
	} else {
		store = kv.NewFileStore(cfg.KVFile) // File-backed key/value store
	}

	// Pick the persistence variant the ledger runs against
	var backend storage.Store
	if cfg.StorageBackend == "remote" {
		// Remote variant: document store over HTTP, wallet reference in the KV store
		backend = storage.NewRemoteStore(cfg.APIBaseURL, store, nil)
	} else {
		// Local variant: wallet with embedded transactions in the KV store
		backend = storage.NewLocalStore(store)
	}
	ldgr := ledger.New(backend) // Core ledger over the chosen backend

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Wallet routes
	walletGroup := r.Group("/wallet")
	walletGroup.POST("", api.CreateWalletHandler(ldgr))                          // Create wallet endpoint
	walletGroup.GET("", api.GetWalletHandler(ldgr))                              // Get wallet endpoint
	walletGroup.DELETE("", api.ResetWalletHandler(ldgr))                         // Reset wallet endpoint
	walletGroup.POST("/transactions", api.AddTransactionHandler(ldgr))           // Record transaction endpoint
	walletGroup.GET("/transactions", api.GetTransactionsHandler(ldgr))           // Transaction history endpoint
	walletGroup.GET("/transactions/export", api.ExportTransactionsHandler(ldgr)) // CSV export endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
