package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupPoemRoutes(api *gin.RouterGroup, poemController *controllers.PoemController, store sessions.Store) {
	poems := api.Group("/poems")
	{
		poems.GET("", poemController.GetAllPoems)
		poems.GET("/search", poemController.SearchPoems)

		// Optional auth: anonymous callers see public poems only.
		poems.GET("/user/:userId", middleware.OptionalAuthMiddleware(store), poemController.GetUserPoems)
		poems.GET("/:id", middleware.OptionalAuthMiddleware(store), poemController.GetPoemByID)

		protected := poems.Group("")
		protected.Use(middleware.AuthMiddleware(store))
		{
			protected.POST("", poemController.CreatePoem)
			protected.PUT("/:id", poemController.UpdatePoem)
			protected.DELETE("/:id", poemController.DeletePoem)
			protected.PUT("/:id/like", poemController.ToggleLike)
		}
	}
}
