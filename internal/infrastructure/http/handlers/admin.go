package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// AdminHandlers serves the user administration endpoints
type AdminHandlers struct {
	users  inbound.UserService
	logger *zap.Logger
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(users inbound.UserService, logger *zap.Logger) *AdminHandlers {
	return &AdminHandlers{users: users, logger: logger}
}

// ListUsers handles GET /admin/users
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// ApproveUser handles POST /admin/users/:id/approve
func (h *AdminHandlers) ApproveUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.ApproveUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type setAdminRequest struct {
	Admin *bool `json:"admin" binding:"required"`
}

// SetAdmin handles PUT /admin/users/:id/admin
func (h *AdminHandlers) SetAdmin(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req setAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error()))
		return
	}

	user, err := h.users.SetAdmin(c.Request.Context(), id, *req.Admin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListResetRequests handles GET /admin/reset-requests
func (h *AdminHandlers) ListResetRequests(c *gin.Context) {
	requests, err := h.users.ListPasswordResetRequests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}
