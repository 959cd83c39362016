package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupDiscussionRoutes(api *gin.RouterGroup, discussionController *controllers.DiscussionController, store sessions.Store) {
	discussions := api.Group("/discussions")
	{
		discussions.GET("/:poemId", discussionController.GetDiscussions)
		discussions.POST("/:poemId", middleware.AuthMiddleware(store), discussionController.AddDiscussion)
		discussions.DELETE("/:discussionId", middleware.AuthMiddleware(store), discussionController.DeleteDiscussion)
	}
}
