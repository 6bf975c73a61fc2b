package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pharmastock/internal/adapters/http/middleware"
	"pharmastock/internal/adapters/http/routes"
	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/adapters/persistence/repositories"
	"pharmastock/internal/config"
	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Seed default accounts and reference data
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("Warning: failed to seed database: %v", err)
	}

	// Session store (redis-backed, TTL per session)
	redisClient := config.NewRedisClient(cfg.Redis)
	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	// Daily stock alert sweep
	alertService := services.NewAlertService(repositories.NewMedicineRepository(db))
	alertCron := services.NewAlertCron(alertService, cfg.Alert.CronSpec)
	if err := alertCron.Start(); err != nil {
		log.Fatalf("Failed to start alert sweep: %v", err)
	}
	defer alertCron.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Pharmacy Inventory API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, session store, and cfg for dependency injection)
	routes.Setup(app, db, sessions, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
