package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupUploadRoutes(api *gin.RouterGroup, uploadController *controllers.UploadController, store sessions.Store) {
	uploads := api.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(store))
	{
		uploads.POST("/avatar", uploadController.GetAvatarUploadURL)
	}
}
