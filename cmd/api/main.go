package main

import (
	"log"
	"os"
	"strconv"

	"github.com/atharvakonge/investment-tracker/internal/handlers"
	"github.com/atharvakonge/investment-tracker/internal/portfolio"
	"github.com/atharvakonge/investment-tracker/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults or environment variables")
	}

	// Pick the record store backend
	var st store.Store
	if os.Getenv("STORE") == "memory" {
		st = store.NewMemoryStore()
		log.Println("Using in-memory store")
	} else {
		pg, err := store.OpenPostgres()
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer pg.Close()
		st = pg
	}

	svc := portfolio.NewService(st)

	// Get number of workers from env or default to 5
	numWorkers := 5
	if workers := os.Getenv("NUM_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil && n > 0 {
			numWorkers = n
		}
	}

	// Initialize exit processor
	exitProcessor := handlers.NewExitProcessor(svc, numWorkers)
	exitProcessor.Start()
	defer exitProcessor.Stop()

	h := handlers.NewHandler(svc, exitProcessor)

	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// API routes
	api := router.Group("/api")
	{
		// Stock position endpoints
		api.POST("/stocks", h.AddStock)
		api.GET("/stocks", h.GetAllStocks)
		api.GET("/stocks/active", h.GetActiveStocks)
		api.GET("/stocks/exited", h.GetExitedStocks)
		api.PATCH("/stocks/:id", h.UpdateStock)
		api.DELETE("/stocks/:id", h.DeleteStock)
		api.POST("/stocks/:id/exit", h.ExitStock)

		// Asset ledger endpoints
		api.POST("/assets", h.AddAsset)
		api.GET("/assets", h.GetAllAssets)
		api.PATCH("/assets/:id", h.UpdateAsset)
		api.DELETE("/assets/:id", h.DeleteAsset)

		// Aggregate views
		api.GET("/portfolio/summary", h.GetPortfolioSummary)
		api.GET("/portfolio/allocation", h.GetAssetAllocation)
		api.GET("/portfolio/pnl", h.GetPNLAnalytics)
	}

	// WebSocket endpoint
	router.GET("/ws/portfolio", h.HandleWebSocket)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Get port from environment or default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on http://localhost:" + port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
