package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store sessions.Store, logger *zap.Logger) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, store)
	poemController := controllers.NewPoemController(db)
	reviewController := controllers.NewReviewController(db)
	discussionController := controllers.NewDiscussionController(db)
	favouriteController := controllers.NewFavouriteController(db)
	userController := controllers.NewUserController(db)
	aiController := controllers.NewAIController(db, logger)
	uploadController := controllers.NewUploadController()

	api := r.Group("/api")
	api.Use(middleware.Recovery(logger))

	SetupAuthRoutes(api, authController, store)
	SetupPoemRoutes(api, poemController, store)
	SetupReviewRoutes(api, reviewController, store)
	SetupDiscussionRoutes(api, discussionController, store)
	SetupFavouriteRoutes(api, favouriteController, store)
	SetupUserRoutes(api, userController)
	SetupAIRoutes(api, aiController, store)
	SetupUploadRoutes(api, uploadController, store)
}
