package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/routes"
	"github.com/kendall-kelly/cafe-pos-api/services"
)

func main() {
	log.Println("Starting Cafe POS API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if cfg.SeedData {
		if err := config.SeedDatabase(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	images, err := services.NewImageService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	deps, err := routes.NewDependencies(cfg, db, images)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	router := routes.SetupRouter(deps)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
