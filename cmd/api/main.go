package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"commodity-forecast/internal/api/handlers"
	"commodity-forecast/internal/api/middleware"
	"commodity-forecast/internal/data"
	"commodity-forecast/internal/simulate"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Completed results are held in memory so timelines can be fetched
	// by id; TTL is configurable for long analyst sessions.
	ttl := data.DefaultResultTTL
	if v := os.Getenv("RESULT_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}
	store := data.NewResultStore(ttl)

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler(simulate.DefaultParams(), store)
	scenarioHandler := handlers.NewScenarioHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/upload", simulateHandler.RunSimulationUpload)
		api.POST("/simulate/compare", simulateHandler.CompareScenarios)
		api.GET("/simulations/:id/timeline", simulateHandler.GetTimeline)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
