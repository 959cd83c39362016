package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/controllers"
	"github.com/poem-space/api-go/middleware"
	"github.com/poem-space/api-go/sessions"
)

func SetupFavouriteRoutes(api *gin.RouterGroup, favouriteController *controllers.FavouriteController, store sessions.Store) {
	favourites := api.Group("/favorites")
	favourites.Use(middleware.AuthMiddleware(store))
	{
		favourites.POST("/:poemId", favouriteController.ToggleFavourite)
		favourites.GET("", favouriteController.GetFavourites)
	}
}
