package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
)

// TestAPIController is the unauthenticated connectivity probe against the
// completion provider.
type TestAPIController struct {
	Completer usecase.Completer
}

func NewTestAPIController(completer usecase.Completer) *TestAPIController {
	return &TestAPIController{Completer: completer}
}

func (h *TestAPIController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		content, err := h.Completer.Complete(ctx, "Hello")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "API key is invalid or OpenRouter is down.",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "API key is valid!",
			"content": content,
		})
	}
}
