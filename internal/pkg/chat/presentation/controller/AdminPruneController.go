package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	queueport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/queue/port"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/task"
)

// AdminPruneController enqueues a background retention-pruning task that
// deletes chat records older than the requested age.
type AdminPruneController struct {
	Q queueport.Client // optional; nil when no queue backend is configured
}

func NewAdminPruneController(client queueport.Client) *AdminPruneController {
	return &AdminPruneController{Q: client}
}

type pruneRequest struct {
	OlderThanDays int `json:"older_than_days"`
}

func (h *AdminPruneController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Q == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Background queue is not configured."})
			return
		}

		var req pruneRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.OlderThanDays <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "older_than_days must be a positive integer."})
			return
		}

		payload := task.PruneChatsTaskPayload{
			Cutoff: time.Now().UTC().AddDate(0, 0, -req.OlderThanDays),
		}
		b, err := json.Marshal(payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode task payload."})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		opts := queueport.EnqueueOption{Queue: "maintenance", MaxRetry: 5}
		id, err := h.Q.Enqueue(ctx, queueport.Task{Type: task.PruneChatsTaskType, Payload: b}, opts)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to enqueue prune task."})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status":  "queued",
			"task_id": id,
			"cutoff":  payload.Cutoff,
		})
	}
}
