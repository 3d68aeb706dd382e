package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
)

// respondError maps use case failures to HTTP statuses. Every failure is a
// generic message plus status; nothing is retried on behalf of the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		// Absent and not-owned are indistinguishable to the caller.
		c.JSON(http.StatusForbidden, gin.H{"error": "Chat not found or not owned by user."})
	case errors.Is(err, usecase.ErrUpstream):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get AI response."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected server error."})
	}
}
