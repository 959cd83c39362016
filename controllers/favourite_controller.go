package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/models"
	"github.com/poem-space/api-go/utils"
	"gorm.io/gorm"
)

type FavouriteController struct {
	DB *gorm.DB
}

func NewFavouriteController(db *gorm.DB) *FavouriteController {
	return &FavouriteController{DB: db}
}

// ToggleFavourite godoc
// @Summary Bookmark or un-bookmark a poem
// @Tags favourites
// @Produce json
// @Param poemId path integer true "Poem ID"
// @Success 200 {object} map[string]interface{}
// @Router /favorites/{poemId} [post]
func (fc *FavouriteController) ToggleFavourite(c *gin.Context) {
	user := utils.GetUser(c)

	var poem models.Poem
	if err := fc.DB.First(&poem, "id = ?", c.Param("poemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	var existing models.Favourite
	result := fc.DB.Where("user_id = ? AND poem_id = ?", user.UserID, poem.ID).First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		favourite := models.Favourite{
			UserID: user.UserID,
			PoemID: poem.ID,
		}
		if err := fc.DB.Create(&favourite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add favourite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to favorites", "isFavorited": true})
		return
	}

	if err := fc.DB.Delete(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove favourite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "isFavorited": false})
}

// GetFavourites godoc
// @Summary List the caller's favourite poems
// @Tags favourites
// @Produce json
// @Success 200 {array} models.Poem
// @Router /favorites [get]
func (fc *FavouriteController) GetFavourites(c *gin.Context) {
	user := utils.GetUser(c)

	var poems []models.Poem
	result := fc.DB.Model(&models.Poem{}).
		Select("poems.*").
		Joins("JOIN favourites ON favourites.poem_id = poems.id").
		Where("favourites.user_id = ?", user.UserID).
		Preload("Author").
		Order("favourites.created_at DESC").
		Find(&poems)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching favourites"})
		return
	}

	c.JSON(http.StatusOK, poems)
}
