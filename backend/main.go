package main

import (
	"log"

	"residencia/backend/config"
	"residencia/backend/filter"
	"residencia/backend/middleware"
	"residencia/backend/routes"
	"residencia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Board mappings are loaded once and shared by every filter invocation
	engine := filter.NewEngine(filter.DefaultMappings())

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, engine)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
