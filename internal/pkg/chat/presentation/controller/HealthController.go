package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
)

// HealthController serves the liveness/readiness probe. When a cache backend
// is configured its connectivity is part of readiness.
type HealthController struct {
	Cache cacheport.Cache // optional
}

func NewHealthController(cache cacheport.Cache) *HealthController {
	return &HealthController{Cache: cache}
}

func (h *HealthController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "OK"}
		if h.Cache != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := h.Cache.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": "unavailable"})
				return
			}
			body["cache"] = "ok"
		}
		c.JSON(http.StatusOK, body)
	}
}
