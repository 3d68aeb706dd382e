package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/middleware"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// DeleteChatController handles the delete-chat endpoint.
type DeleteChatController struct {
	UC    *usecase.DeleteChatUseCase
	Cache cacheport.Cache // optional
}

func NewDeleteChatController(repo repository.ChatRepository, cache cacheport.Cache) *DeleteChatController {
	return &DeleteChatController{
		UC:    usecase.NewDeleteChatUseCase(repo),
		Cache: cache,
	}
}

type deleteChatRequest struct {
	ChatID string `json:"chat_id"`
}

func (h *DeleteChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Chat ID is required."})
			return
		}

		userID := middleware.UserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, req.ChatID, userID); err != nil {
			respondError(c, err)
			return
		}

		invalidateHistory(ctx, h.Cache, userID)

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
