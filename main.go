// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-api/config"
	"inkwell-api/database"
	"inkwell-api/jobs"
	"inkwell-api/middleware"
	"inkwell-api/routes"
	"inkwell-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Home feed cache plus its background sweeper
	cache := services.NewCacheService(cfg.CacheTTL)
	sweeper := jobs.NewCacheSweeperJob(cache, time.Minute)
	sweeper.Start()
	defer sweeper.Stop()

	emailService := services.NewEmailService(cfg)

	// Create router
	router := gin.Default()

	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ErrorHandler())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, cache, emailService)

	// Start server
	log.Printf("Starting Inkwell API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
