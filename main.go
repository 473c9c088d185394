package main

import (
	"log"
	"net/http"
	"time"

	"eventhub-backend/config"
	"eventhub-backend/database"
	"eventhub-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using system environment variables")
	}
}

func main() {
	LoadEnv()

	cfg := config.Load()
	if cfg.JWTSecret == "dev_secret_change_me" {
		log.Println("warning: JWT_SECRET not set, using insecure default")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	SetupRoutes(r, db, cfg)

	log.Printf("server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
