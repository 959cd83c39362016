package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupAIRoutes(api *gin.RouterGroup, aiController *controllers.AIController, store sessions.Store) {
	ai := api.Group("/ai")
	ai.Use(middleware.AuthMiddleware(store))
	{
		ai.POST("/insight/:poemId", aiController.GenerateInsight)
	}
}
