package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/models"
	"github.com/poem-space/api-go/utils"
	"gorm.io/gorm"
)

type DiscussionController struct {
	DB *gorm.DB
}

func NewDiscussionController(db *gorm.DB) *DiscussionController {
	return &DiscussionController{DB: db}
}

// AddDiscussion godoc
// @Summary Comment on a poem
// @Tags discussions
// @Accept json
// @Produce json
// @Param poemId path integer true "Poem ID"
// @Success 201 {object} models.Discussion
// @Router /discussions/{poemId} [post]
func (dc *DiscussionController) AddDiscussion(c *gin.Context) {
	user := utils.GetUser(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required"})
		return
	}

	var poem models.Poem
	if err := dc.DB.First(&poem, "id = ?", c.Param("poemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	discussion := models.Discussion{
		PoemID:   poem.ID,
		AuthorID: user.UserID,
		Content:  req.Content,
	}

	if err := dc.DB.Create(&discussion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create discussion"})
		return
	}

	if err := dc.DB.Preload("Author").First(&discussion, discussion.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load discussion"})
		return
	}

	c.JSON(http.StatusCreated, discussion)
}

// GetDiscussions godoc
// @Summary List discussion comments for a poem
// @Tags discussions
// @Produce json
// @Param poemId path integer true "Poem ID"
// @Success 200 {array} models.Discussion
// @Router /discussions/{poemId} [get]
func (dc *DiscussionController) GetDiscussions(c *gin.Context) {
	var discussions []models.Discussion
	result := dc.DB.Preload("Author").
		Where("poem_id = ?", c.Param("poemId")).
		Order("created_at DESC").
		Find(&discussions)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching discussions"})
		return
	}

	c.JSON(http.StatusOK, discussions)
}

// DeleteDiscussion godoc
// @Summary Delete a discussion comment
// @Tags discussions
// @Produce json
// @Param discussionId path integer true "Discussion ID"
// @Success 200 {object} map[string]interface{}
// @Router /discussions/{discussionId} [delete]
func (dc *DiscussionController) DeleteDiscussion(c *gin.Context) {
	user := utils.GetUser(c)

	var discussion models.Discussion
	if err := dc.DB.First(&discussion, "id = ?", c.Param("discussionId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Discussion not found"})
		return
	}

	if discussion.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this comment"})
		return
	}

	if err := dc.DB.Delete(&discussion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete discussion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discussion deleted"})
}
