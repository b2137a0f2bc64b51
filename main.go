package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/where-app/api-go/config"
	"github.com/where-app/api-go/engine"
	"github.com/where-app/api-go/routes"
	"github.com/where-app/api-go/store"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Initialize database
	db := config.InitDB()

	// Wire the points engine to its persistence
	locations := store.NewLocationStore(db)
	journal := store.NewActivityJournal(db)
	cache := store.NewPointsCache(db)

	eng := engine.New(locations, journal, cache)

	activities, err := journal.Load()
	if err != nil {
		log.Fatal("Failed to load point activities:", err)
	}
	eng.Ledger.Restore(activities)
	log.Printf("Restored %d point activities", len(activities))

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, eng)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
