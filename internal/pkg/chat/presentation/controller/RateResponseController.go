package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/middleware"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// RateResponseController handles the rate-response endpoint.
type RateResponseController struct {
	UC *usecase.RateResponseUseCase
}

func NewRateResponseController(repo repository.ChatRepository) *RateResponseController {
	return &RateResponseController{UC: usecase.NewRateResponseUseCase(repo)}
}

// rateResponseRequest uses a pointer for message_index so index zero is
// distinguishable from an absent field.
type rateResponseRequest struct {
	ChatID       string `json:"chat_id"`
	MessageIndex *int   `json:"message_index"`
	Rating       string `json:"rating"`
}

func (h *RateResponseController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rateResponseRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == "" || req.MessageIndex == nil || req.Rating == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
			return
		}

		in := usecase.RateResponseInput{
			ChatID:       req.ChatID,
			MessageIndex: *req.MessageIndex,
			Rating:       req.Rating,
			UserID:       middleware.UserID(c),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, in); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rating saved successfully."})
	}
}
