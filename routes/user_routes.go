package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
)

func SetupUserRoutes(api *gin.RouterGroup, userController *controllers.UserController) {
	users := api.Group("/users")
	{
		users.GET("/:id", userController.GetUserProfile)
	}
}
