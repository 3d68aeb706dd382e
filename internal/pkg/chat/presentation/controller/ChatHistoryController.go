package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/middleware"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// ChatHistoryController serves the per-user chat listing, cached in Redis
// for a short TTL and invalidated whenever the user's chats change.
type ChatHistoryController struct {
	UC    *usecase.ChatHistoryUseCase
	Cache cacheport.Cache // optional
}

func NewChatHistoryController(repo repository.ChatRepository, cache cacheport.Cache) *ChatHistoryController {
	return &ChatHistoryController{
		UC:    usecase.NewChatHistoryUseCase(repo),
		Cache: cache,
	}
}

const jsonContentType = "application/json; charset=utf-8"

func (h *ChatHistoryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if h.Cache != nil {
			if cached, err := h.Cache.Get(ctx, historyCacheKey(userID)); err == nil {
				c.Data(http.StatusOK, jsonContentType, []byte(cached))
				return
			}
		}

		entries, err := h.UC.Execute(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}

		body, err := json.Marshal(gin.H{"history": entries})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history."})
			return
		}

		if h.Cache != nil {
			// Best effort; a failed Set only skips the cache for this response.
			_ = h.Cache.Set(ctx, historyCacheKey(userID), string(body), historyCacheTTL)
		}

		c.Data(http.StatusOK, jsonContentType, body)
	}
}
