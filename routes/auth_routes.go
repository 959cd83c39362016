package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupAuthRoutes(api *gin.RouterGroup, authController *controllers.AuthController, store sessions.Store) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/google", authController.GoogleLogin)
		auth.POST("/logout", authController.Logout)

		auth.GET("/me", middleware.AuthMiddleware(store), authController.GetMe)
		auth.PUT("/profile", middleware.AuthMiddleware(store), authController.UpdateProfile)
	}
}
