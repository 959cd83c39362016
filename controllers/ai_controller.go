package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/poem-space/api-go/models"
	"github.com/poem-space/api-go/utils"
	"go.uber.org/zap"
	"google.golang.org/genai"
	"gorm.io/gorm"
)

const insightTimeout = 30 * time.Second

// One configured client is reused across requests. It is created lazily on
// first use so the service can boot without an API key as long as nobody
// calls the insight endpoint.
var (
	genaiClient *genai.Client
	genaiOnce   sync.Once
	genaiErr    error
)

func getGenAIClient(ctx context.Context) (*genai.Client, error) {
	genaiOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			genaiErr = fmt.Errorf("GEMINI_API_KEY is missing, check your .env file")
			return
		}

		genaiClient, genaiErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: apiKey,
		})
	})
	return genaiClient, genaiErr
}

type AIController struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewAIController(db *gorm.DB, logger *zap.Logger) *AIController {
	return &AIController{DB: db, Logger: logger}
}

// GenerateInsight godoc
// @Summary Generate a short critique of a poem
// @Description Owner-only; persists the critique onto the poem
// @Tags ai
// @Produce json
// @Param poemId path integer true "Poem ID"
// @Success 200 {object} map[string]interface{}
// @Router /ai/insight/{poemId} [post]
func (ai *AIController) GenerateInsight(c *gin.Context) {
	user := utils.GetUser(c)

	var poem models.Poem
	if err := ai.DB.First(&poem, "id = ?", c.Param("poemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Poem not found"})
		return
	}

	if poem.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to generate insights for this poem"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), insightTimeout)
	defer cancel()

	client, err := getGenAIClient(ctx)
	if err != nil {
		ai.Logger.Error("genai client unavailable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	prompt := fmt.Sprintf(`Analyze the following poem. Provide a brief, insightful critique (3-4 sentences)
touching on theme, tone, and emotional resonance.

Title: %s
Tags: %s
Content:
%q
`, poem.Title, strings.Join(poem.Tags, ", "), poem.Content)

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText("You are a helpful literary assistant and poetry critic.", genai.RoleUser),
		MaxOutputTokens:   256,
	})
	if err != nil {
		ai.Logger.Error("insight generation failed", zap.Uint("poem_id", poem.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	insight := strings.TrimSpace(result.Text())
	if insight == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No insight returned"})
		return
	}

	if err := ai.DB.Model(&poem).Update("ai_insight", insight).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save insight"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Insight generated successfully",
		"insight": insight,
	})
}
