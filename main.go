package main

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/poem-space/api-go/config"
	"github.com/poem-space/api-go/routes"
	"github.com/poem-space/api-go/sessions"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Not fatal: production environments inject real env vars.
	}

	logger := config.NewLogger()
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	// Session store backed by redis
	store := sessions.NewRedisStore(config.NewRedisClient())

	// Create a new Gin router
	r := gin.Default()

	// CORS: the SPA talks to this backend with credentials (session cookie)
	corsConfig := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	corsConfig.AllowOrigins = strings.Split(origins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	// Initialize routes
	routes.SetupRoutes(r, db, store, logger)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
