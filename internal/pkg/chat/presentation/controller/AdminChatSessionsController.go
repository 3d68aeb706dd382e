package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// AdminChatSessionsController serves the admin chat-session listing and
// deletion endpoints. Both sit behind VerifyUser + AdminCheck.
type AdminChatSessionsController struct {
	ListUC   *usecase.ListChatSessionsUseCase
	DeleteUC *usecase.DeleteChatSessionUseCase
}

func NewAdminChatSessionsController(repo repository.ChatRepository) *AdminChatSessionsController {
	return &AdminChatSessionsController{
		ListUC:   usecase.NewListChatSessionsUseCase(repo),
		DeleteUC: usecase.NewDeleteChatSessionUseCase(repo),
	}
}

func (h *AdminChatSessionsController) HandleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		recs, err := h.ListUC.Execute(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

func (h *AdminChatSessionsController) HandleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.DeleteUC.Execute(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
	}
}
