package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupReviewRoutes(api *gin.RouterGroup, reviewController *controllers.ReviewController, store sessions.Store) {
	reviews := api.Group("/reviews")
	{
		reviews.GET("/:poemId", reviewController.GetReviews)
		reviews.POST("/:poemId", middleware.AuthMiddleware(store), reviewController.AddReview)
		reviews.DELETE("/:reviewId", middleware.AuthMiddleware(store), reviewController.DeleteReview)
	}
}
