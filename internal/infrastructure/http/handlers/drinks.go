package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/infrastructure/http/middleware"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// DrinkHandlers serves the drink catalog endpoints
type DrinkHandlers struct {
	drinks inbound.DrinkService
	logger *zap.Logger
}

// NewDrinkHandlers creates new drink handlers
func NewDrinkHandlers(drinks inbound.DrinkService, logger *zap.Logger) *DrinkHandlers {
	return &DrinkHandlers{drinks: drinks, logger: logger}
}

// List handles GET /drinks. An optional q parameter filters the catalog by a
// case-insensitive substring match.
func (h *DrinkHandlers) List(c *gin.Context) {
	drinks, err := h.drinks.ListDrinks(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drinks": drinks,
		"total":  len(drinks),
	})
}

// Get handles GET /drinks/:id
func (h *DrinkHandlers) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	drink, err := h.drinks.GetDrinkByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"drink": drink})
}

type createDrinkRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Instructions string `json:"instructions" binding:"required"`
	Quote        string `json:"quote"`
	Classic      bool   `json:"classic"`
	Ingredients  string `json:"ingredients" binding:"required"`
}

// Create handles POST /drinks. Ingredients arrive as raw multi-line text.
// Only admins can mark a drink as a classic; the flag is ignored otherwise.
func (h *DrinkHandlers) Create(c *gin.Context) {
	var req createDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error()))
		return
	}

	classic := req.Classic && c.GetBool(middleware.ContextIsAdmin)

	drink, err := h.drinks.CreateDrink(c.Request.Context(), inbound.CreateDrinkCommand{
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		Quote:        req.Quote,
		Classic:      classic,
		Ingredients:  req.Ingredients,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"drink": drink})
}

// Delete handles DELETE /drinks/:id
func (h *DrinkHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.drinks.DeleteDrink(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type setClassicRequest struct {
	Classic *bool `json:"classic" binding:"required"`
}

// SetClassic handles PUT /drinks/:id/classic
func (h *DrinkHandlers) SetClassic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req setClassicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error()))
		return
	}

	drink, err := h.drinks.SetClassic(c.Request.Context(), id, *req.Classic)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"drink": drink})
}

// ListIngredients handles GET /ingredients, returning every known
// normalized ingredient key.
func (h *DrinkHandlers) ListIngredients(c *gin.Context) {
	keys, err := h.drinks.ListIngredientKeys(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": keys,
		"total":       len(keys),
	})
}

// Stats handles GET /admin/stats
func (h *DrinkHandlers) Stats(c *gin.Context) {
	stats, err := h.drinks.GetCatalogStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
