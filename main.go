package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"practmd-server/internal/config"
	"practmd-server/internal/fixtures"
	"practmd-server/internal/logger"
	"practmd-server/internal/middleware"
	"practmd-server/internal/routes"
	"practmd-server/internal/store"
)

func main() {
	// Load environment variables; a missing .env file is fine in production
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger.Initialize(cfg.Environment)
	zapLog := logger.Get()
	defer zapLog.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Seed the in-memory stores with the demo practice data
	now := time.Now()
	schedules := store.NewScheduleStore(fixtures.Appointments(now), fixtures.AvailabilitySlots(now))
	patients := store.NewPatientStore(fixtures.Patients())

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zapLog))

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Set up routes - passing the stores to let routes.go create the handlers
	routes.SetupRoutes(router, schedules, patients)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	zapLog.Info("Server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	if err := router.Run(serverAddr); err != nil {
		zapLog.Fatal("Failed to start server", zap.Error(err))
	}
}
