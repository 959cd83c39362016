package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/poem-space/api-go/models"
	"github.com/poem-space/api-go/utils"
	"gorm.io/gorm"
)

type PoemController struct {
	DB *gorm.DB
}

func NewPoemController(db *gorm.DB) *PoemController {
	return &PoemController{DB: db}
}

type CreatePoemRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Tags       []string `json:"tags"`
	Visibility *bool    `json:"visibility"`
}

type UpdatePoemRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	Visibility *bool     `json:"visibility"`
}

// CreatePoem godoc
// @Summary Create a new poem
// @Tags poems
// @Accept json
// @Produce json
// @Param poem body CreatePoemRequest true "Poem creation request"
// @Success 201 {object} models.Poem
// @Router /poems [post]
func (pc *PoemController) CreatePoem(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreatePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	visibility := true
	if req.Visibility != nil {
		visibility = *req.Visibility
	}

	poem := models.Poem{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       pq.StringArray(utils.NormalizeTags(req.Tags)),
		Visibility: visibility,
		AuthorID:   user.UserID,
	}

	if err := pc.DB.Create(&poem).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create poem"})
		return
	}

	if err := pc.DB.Preload("Author").First(&poem, poem.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load poem"})
		return
	}

	c.JSON(http.StatusCreated, poem)
}

// GetAllPoems godoc
// @Summary Public feed
// @Description Paginated list of public poems, newest first
// @Tags poems
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param limit query integer false "Items per page (default: 10)"
// @Success 200 {object} map[string]interface{}
// @Router /poems [get]
func (pc *PoemController) GetAllPoems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	if err := pc.DB.Model(&models.Poem{}).Where("visibility = ?", true).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching poems"})
		return
	}

	var poems []models.Poem
	result := pc.DB.Preload("Author").
		Where("visibility = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&poems)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching poems"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"poems": poems,
		"page":  page,
		"pages": utils.TotalPages(total, limit),
		"total": total,
	})
}

// GetUserPoems godoc
// @Summary Poems by a user
// @Description Owners see all of their poems, everyone else sees public ones
// @Tags poems
// @Produce json
// @Param userId path integer true "User ID"
// @Success 200 {array} models.Poem
// @Router /poems/user/{userId} [get]
func (pc *PoemController) GetUserPoems(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	caller := utils.GetUser(c)
	isOwner := caller != nil && caller.UserID == uint(userID)

	query := pc.DB.Preload("Author").Where("author_id = ?", uint(userID))
	if !isOwner {
		query = query.Where("visibility = ?", true)
	}

	var poems []models.Poem
	if err := query.Order("created_at DESC").Find(&poems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching poems"})
		return
	}

	c.JSON(http.StatusOK, poems)
}

// GetPoemByID godoc
// @Summary Get a poem with author and reviews
// @Tags poems
// @Produce json
// @Param id path integer true "Poem ID"
// @Success 200 {object} models.Poem
// @Router /poems/{id} [get]
func (pc *PoemController) GetPoemByID(c *gin.Context) {
	var poem models.Poem
	err := pc.DB.Preload("Author").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.Author").
		First(&poem, "poems.id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	if !poem.Visibility {
		caller := utils.GetUser(c)
		if caller == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, please login"})
			return
		}
		if caller.UserID != poem.AuthorID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to view this poem"})
			return
		}
	}

	c.JSON(http.StatusOK, poem)
}

// UpdatePoem godoc
// @Summary Update a poem
// @Description Partial update; only fields present in the payload change
// @Tags poems
// @Accept json
// @Produce json
// @Param id path integer true "Poem ID"
// @Param poem body UpdatePoemRequest true "Poem update request"
// @Success 200 {object} models.Poem
// @Router /poems/{id} [put]
func (pc *PoemController) UpdatePoem(c *gin.Context) {
	user := utils.GetUser(c)

	var req UpdatePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var poem models.Poem
	if err := pc.DB.First(&poem, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	if poem.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to update this poem"})
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Title cannot be empty"})
			return
		}
		poem.Title = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Content cannot be empty"})
			return
		}
		poem.Content = *req.Content
	}
	if req.Tags != nil {
		poem.Tags = pq.StringArray(utils.NormalizeTags(*req.Tags))
	}
	if req.Visibility != nil {
		poem.Visibility = *req.Visibility
	}

	if err := pc.DB.Save(&poem).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update poem"})
		return
	}

	c.JSON(http.StatusOK, poem)
}

// DeletePoem godoc
// @Summary Delete a poem and its dependent records
// @Tags poems
// @Produce json
// @Param id path integer true "Poem ID"
// @Success 200 {object} map[string]interface{}
// @Router /poems/{id} [delete]
func (pc *PoemController) DeletePoem(c *gin.Context) {
	user := utils.GetUser(c)

	var poem models.Poem
	if err := pc.DB.First(&poem, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	if poem.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this poem"})
		return
	}

	tx := pc.DB.Begin()

	var likeCount int64
	if err := tx.Model(&models.Like{}).Where("poem_id = ?", poem.ID).Count(&likeCount).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete poem"})
		return
	}

	if err := tx.Where("poem_id = ?", poem.ID).Delete(&models.Review{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete reviews"})
		return
	}

	if err := tx.Where("poem_id = ?", poem.ID).Delete(&models.Discussion{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete discussions"})
		return
	}

	if err := tx.Where("poem_id = ?", poem.ID).Delete(&models.Like{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete likes"})
		return
	}

	if err := tx.Where("poem_id = ?", poem.ID).Delete(&models.Favourite{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete favourites"})
		return
	}

	// Deleted likes no longer count toward the author's aggregate.
	if likeCount > 0 {
		if err := tx.Model(&models.User{}).Where("id = ?", poem.AuthorID).
			Update("total_likes", gorm.Expr("GREATEST(total_likes - ?, 0)", likeCount)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update author likes"})
			return
		}
	}

	if err := tx.Delete(&poem).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete poem"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete poem"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Poem deleted successfully"})
}

// ToggleLike godoc
// @Summary Like or unlike a poem
// @Description Idempotent toggle; keeps the author's aggregate counter in step
// @Tags poems
// @Produce json
// @Param id path integer true "Poem ID"
// @Success 200 {object} map[string]interface{}
// @Router /poems/{id}/like [put]
func (pc *PoemController) ToggleLike(c *gin.Context) {
	user := utils.GetUser(c)

	var poem models.Poem
	if err := pc.DB.First(&poem, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	var existingLike models.Like
	result := pc.DB.Where("poem_id = ? AND user_id = ?", poem.ID, user.UserID).First(&existingLike)

	tx := pc.DB.Begin()

	liked := false
	if result.Error == gorm.ErrRecordNotFound {
		like := models.Like{
			PoemID: poem.ID,
			UserID: user.UserID,
		}
		if err := tx.Create(&like).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to like poem"})
			return
		}

		if err := tx.Model(&models.User{}).Where("id = ?", poem.AuthorID).
			Update("total_likes", gorm.Expr("total_likes + ?", 1)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update author likes"})
			return
		}
		liked = true
	} else {
		if err := tx.Delete(&existingLike).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to unlike poem"})
			return
		}

		if err := tx.Model(&models.User{}).Where("id = ?", poem.AuthorID).
			Update("total_likes", gorm.Expr("GREATEST(total_likes - ?, 0)", 1)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update author likes"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to toggle like"})
		return
	}

	var likes []uint
	pc.DB.Model(&models.Like{}).Where("poem_id = ?", poem.ID).Pluck("user_id", &likes)

	c.JSON(http.StatusOK, gin.H{
		"liked":      liked,
		"likes":      likes,
		"likesCount": len(likes),
	})
}

// SearchPoems godoc
// @Summary Search and filter public poems
// @Description Case-insensitive tag membership and substring match over title, content and author username
// @Tags poems
// @Produce json
// @Param q query string false "Search text (alias: query)"
// @Param tag query string false "Tag filter (alias: tags, comma-separated)"
// @Success 200 {array} models.Poem
// @Router /poems/search [get]
func (pc *PoemController) SearchPoems(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		q = c.Query("query")
	}

	tags := utils.SplitCSV(c.Query("tags"))
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tags = append([]string{tag}, tags...)
	}

	db := pc.DB.Model(&models.Poem{}).Where("poems.visibility = ?", true)

	if len(tags) > 0 {
		lowered := make([]string, len(tags))
		for i, tag := range tags {
			lowered[i] = strings.ToLower(tag)
		}
		db = db.Where("EXISTS (SELECT 1 FROM unnest(poems.tags) AS tag WHERE LOWER(tag) = ANY(?))", pq.Array(lowered))
	}

	if q != "" {
		like := "%" + q + "%"
		db = db.Joins("JOIN users ON users.id = poems.author_id").
			Where("poems.title ILIKE ? OR poems.content ILIKE ? OR users.username ILIKE ?", like, like, like)
	}

	var poems []models.Poem
	result := db.Select("poems.*").
		Preload("Author").
		Order("poems.created_at DESC").
		Find(&poems)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching poems"})
		return
	}

	c.JSON(http.StatusOK, poems)
}
