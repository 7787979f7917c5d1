package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// AIHandlers serves the drink suggestion endpoints
type AIHandlers struct {
	ai     inbound.AIService
	logger *zap.Logger
}

// NewAIHandlers creates new AI handlers
func NewAIHandlers(ai inbound.AIService, logger *zap.Logger) *AIHandlers {
	return &AIHandlers{ai: ai, logger: logger}
}

// Status handles GET /ai/status
func (h *AIHandlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enabled": h.ai.Enabled()})
}

type suggestRequest struct {
	Ingredients string `json:"ingredients"`
	Theme       string `json:"theme"`
	Language    string `json:"language"`
}

// Suggest handles POST /ai/suggest. The suggestion is returned for review
// and never stored; submitting it to the catalog is a separate request.
func (h *AIHandlers) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error()))
		return
	}

	if req.Ingredients == "" && req.Theme == "" {
		respondError(c, errors.NewValidationError("ingredients or theme is required"))
		return
	}

	suggestion, err := h.ai.SuggestDrink(c.Request.Context(), inbound.SuggestDrinkCommand{
		Ingredients: req.Ingredients,
		Theme:       req.Theme,
		Language:    req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}
