package task

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/Kalashsatyapal/ChatNova/internal/infrastructure/queue/port"
	"github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/usecase"
	repoAdapter "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/adapter"
)

// PruneChatsTaskType is the queue task name for chat retention pruning.
const PruneChatsTaskType = "chat:prune"

// PruneChatsTaskPayload is the JSON payload transported via the queue.
// Kept decoupled from domain types to avoid tight coupling with JSON tags.
type PruneChatsTaskPayload struct {
	Cutoff time.Time `json:"cutoff"`
}

// RegisterPruneChatsTask binds the prune handler to the provided server.
// The handler deletes every chat record created before the payload cutoff.
// Cached history listings are not invalidated; affected users may see
// pruned chats until the cache TTL expires.
func RegisterPruneChatsTask(srv qport.Server, pool *pgxpool.Pool) {
	srv.Register(PruneChatsTaskType, func(ctx context.Context, t qport.Task) error {
		var p PruneChatsTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: do not retry indefinitely
			return err
		}

		repo := repoAdapter.NewPgChatRepository(pool)
		uc := usecase.NewPruneChatsUseCase(repo)

		// give DB a reasonable time budget per task execution
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		n, err := uc.Execute(ctx, p.Cutoff)
		if err != nil {
			return err
		}
		slog.Info("pruned chat records", "cutoff", p.Cutoff, "deleted", n)
		return nil
	})
}
