package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/realtime"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/middleware"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// ChatController handles the synchronous chat-turn endpoint (one controller
// per endpoint).
type ChatController struct {
	UC    *usecase.ChatTurnUseCase
	Hub   *realtime.Hub
	Cache cacheport.Cache // optional; nil disables history caching
}

func NewChatController(repo repository.ChatRepository, completer usecase.Completer, hub *realtime.Hub, cache cacheport.Cache) *ChatController {
	return &ChatController{
		UC:    usecase.NewChatTurnUseCase(repo, completer),
		Hub:   hub,
		Cache: cache,
	}
}

// chatRequest is the DTO for the HTTP request body
type chatRequest struct {
	Message  string `json:"message"`
	ChatID   string `json:"chat_id"`
	Category string `json:"category"`
}

// Handle runs one chat turn and, on success, publishes the assistant
// message into the chat's room. Persisting and publishing are two explicit
// steps with no shared transaction: a broadcast into an already-empty room
// is a no-op and the history fetch remains the source of truth.
func (h *ChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
			return
		}

		in := usecase.ChatTurnInput{
			UserID:   middleware.UserID(c),
			Message:  req.Message,
			ChatID:   req.ChatID,
			Category: req.Category,
		}

		// The completion call dominates this budget; DB work is fast.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, in)
		if err != nil {
			respondError(c, err)
			return
		}

		// Fan out to every member of the room, the requester included;
		// the turn ran out-of-band from any relay connection.
		if payload, err := realtime.AssistantMessage(res.Answer).Encode(); err == nil {
			h.Hub.Broadcast(res.ChatID, payload, "")
		}

		invalidateHistory(ctx, h.Cache, in.UserID)

		c.JSON(http.StatusOK, gin.H{
			"chat_id": res.ChatID,
			"answer":  res.Answer,
		})
	}
}
