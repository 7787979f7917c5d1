// Package handlers provides the gin handlers for the REST API
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/j4rl/barcraft/pkg/errors"
)

// respondError writes a structured error response with the status code the
// error maps to.
func respondError(c *gin.Context, err error) {
	appErr := errors.Wrap(err, "Request failed")
	c.JSON(appErr.StatusCode(), errors.ToErrorResponse(appErr, c.GetString("request_id")))
}

// parseID reads a uuid path parameter, responding with a validation error on
// failure.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, errors.NewValidationError(param+" must be a valid uuid"))
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		respondError(c, errors.NewUnauthorizedError(""))
		return uuid.Nil, false
	}
	return id, true
}
