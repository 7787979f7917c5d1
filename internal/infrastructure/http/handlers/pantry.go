package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/domain/pantry"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// PantryHandlers serves the pantry and matching endpoints
type PantryHandlers struct {
	pantry inbound.PantryService
	logger *zap.Logger
}

// NewPantryHandlers creates new pantry handlers
func NewPantryHandlers(pantry inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{pantry: pantry, logger: logger}
}

// Get handles GET /pantry
func (h *PantryHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	keys, err := h.pantry.GetPantry(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pantry": keys,
		"total":  len(keys),
	})
}

type updatePantryRequest struct {
	Ingredients string `json:"ingredients"`
}

// Update handles PUT /pantry. The pantry is replaced wholesale with whatever
// parses out of the raw text; an empty body clears it.
func (h *PantryHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updatePantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error()))
		return
	}

	keys, err := h.pantry.UpdatePantry(c.Request.Context(), userID, req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pantry": keys,
		"total":  len(keys),
	})
}

// Matches handles GET /pantry/matches. An optional missing parameter narrows
// the almost buckets to a single missing-ingredient count.
func (h *PantryHandlers) Matches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.pantry.GetMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if raw := c.Query("missing"); raw != "" {
		missing, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, errors.NewValidationError("missing must be an integer"))
			return
		}
		// 0 and out-of-range values mean no filter
		if missing >= 1 && missing <= pantry.MaxMissing {
			filtered := make(map[int][]inbound.AlmostDTO)
			if bucket, ok := matches.Almost[missing]; ok {
				filtered[missing] = bucket
			}
			matches.Almost = filtered
		}
	}

	c.JSON(http.StatusOK, matches)
}
