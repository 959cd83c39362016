package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/models"
	"github.com/poem-space/api-go/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddReview godoc
// @Summary Review a poem
// @Tags reviews
// @Accept json
// @Produce json
// @Param poemId path integer true "Poem ID"
// @Param review body AddReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Router /reviews/{poemId} [post]
func (rc *ReviewController) AddReview(c *gin.Context) {
	user := utils.GetUser(c)

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		return
	}

	var poem models.Poem
	if err := rc.DB.First(&poem, "id = ?", c.Param("poemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	review := models.Review{
		PoemID:   poem.ID,
		AuthorID: user.UserID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
		return
	}

	if err := rc.DB.Preload("Author").First(&review, review.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetReviews godoc
// @Summary List reviews for a poem
// @Tags reviews
// @Produce json
// @Param poemId path integer true "Poem ID"
// @Success 200 {array} models.Review
// @Router /reviews/{poemId} [get]
func (rc *ReviewController) GetReviews(c *gin.Context) {
	var reviews []models.Review
	result := rc.DB.Preload("Author").
		Where("poem_id = ?", c.Param("poemId")).
		Order("created_at DESC").
		Find(&reviews)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param reviewId path integer true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Router /reviews/{reviewId} [delete]
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	user := utils.GetUser(c)

	var review models.Review
	if err := rc.DB.First(&review, "id = ?", c.Param("reviewId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		return
	}

	if review.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this review"})
		return
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
