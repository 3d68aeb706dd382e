package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// AdminCheck allows the request through only when the authenticated user
// carries the admin role. Must run after VerifyUser.
func AdminCheck(repo repository.ChatRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User ID required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		role, err := repo.GetUserRole(ctx, userID)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admins only"})
			return
		}
		c.Next()
	}
}
