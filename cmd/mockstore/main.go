package main

import (
	"log"                              // log package is needed for logging
	"wallet_tracker/internal/config"   // Custom package for configuration
	"wallet_tracker/internal/docstore" // Custom package for the document store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the mock document store server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the JSON-file-backed document store
	store, err := docstore.Open(cfg.StoreFile)
	if err != nil {
		logrus.Fatalf("failed to open document store: %v", err) // Fatal error if the file is unreadable
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := docstore.NewRouter(store) // Router serving the wallets and transactions collections

	log.Println("Mock store running on " + cfg.StorePort) // Log server start
	r.Run(":" + cfg.StorePort)                            // Start the server on port cfg.StorePort
}
