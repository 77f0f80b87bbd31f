package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"microgrid-twin/internal/api/handlers"
	"microgrid-twin/internal/api/middleware"
	"microgrid-twin/internal/ws"

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
	router.Use(middleware.CORS(corsOrigins()))
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler()

	// WebSocket playback for the visualization frontend
	hub := ws.NewHub()
	player := ws.NewPlayer(hub)
	wsHandler := ws.NewHandler(hub, player)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/default", simulateHandler.RunDefaultSimulation)
		api.POST("/simulate/sweep", simulateHandler.RunSweep)
		api.GET("/config/defaults", simulateHandler.GetDefaults)
	}

	router.GET("/ws", gin.WrapH(wsHandler))

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
