package http

import (
	"github.com/gin-gonic/gin"

	cacheport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/cache/port"
	queueport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/queue/port"
	"github.com/Kalashsatyapal/ChatNova/internal/infrastructure/realtime"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/controller"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/presentation/middleware"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// Deps bundles everything the chat surface needs. Cache and Queue may be
// nil: history caching and retention pruning degrade gracefully without a
// Redis backend.
type Deps struct {
	Repo      repository.ChatRepository
	Completer usecase.Completer
	Verifier  middleware.TokenVerifier
	Hub       *realtime.Hub
	Cache     cacheport.Cache
	Queue     queueport.Client
}

// RegisterRoutes registers the chat HTTP endpoints and the realtime
// websocket endpoint. It constructs per-endpoint controllers and binds them
// directly to routes.
func RegisterRoutes(r *gin.Engine, d Deps) {
	chatCtl := controller.NewChatController(d.Repo, d.Completer, d.Hub, d.Cache)
	historyCtl := controller.NewChatHistoryController(d.Repo, d.Cache)
	deleteCtl := controller.NewDeleteChatController(d.Repo, d.Cache)
	rateCtl := controller.NewRateResponseController(d.Repo)
	testCtl := controller.NewTestAPIController(d.Completer)
	socketCtl := controller.NewChatSocketController(d.Hub)
	adminCtl := controller.NewAdminChatSessionsController(d.Repo)
	pruneCtl := controller.NewAdminPruneController(d.Queue)

	// Unauthenticated probes and realtime channel.
	r.GET("/health", controller.NewHealthController(d.Cache).Handle())
	r.GET("/test-api", testCtl.Handle())
	r.GET("/ws", socketCtl.Handle())

	// Per-user routes behind bearer auth.
	authed := r.Group("/", middleware.VerifyUser(d.Verifier))
	authed.POST("/chat", chatCtl.Handle())
	authed.GET("/chat-history", historyCtl.Handle())
	authed.DELETE("/delete-chat", deleteCtl.Handle())
	authed.POST("/rate-response", rateCtl.Handle())

	// Admin surface.
	admin := r.Group("/admin", middleware.VerifyUser(d.Verifier), middleware.AdminCheck(d.Repo))
	admin.GET("/chat-sessions", adminCtl.HandleList())
	admin.DELETE("/chat-sessions/:id", adminCtl.HandleDelete())
	admin.POST("/prune", pruneCtl.Handle())
}
