package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/models"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetUserProfile godoc
// @Summary Public profile of a user
// @Tags users
// @Produce json
// @Param id path integer true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id} [get]
func (uc *UserController) GetUserProfile(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var poemsCount int64
	if err := uc.DB.Model(&models.Poem{}).Where("author_id = ?", user.ID).Count(&poemsCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"username":       user.Username,
		"bio":            user.Bio,
		"profilePicture": user.ProfilePicture,
		"totalLikes":     user.TotalLikes,
		"joinedDate":     user.CreatedAt,
		"poemsCount":     poemsCount,
	})
}
