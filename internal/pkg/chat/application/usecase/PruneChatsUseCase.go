package usecase

import (
	"context"
	"fmt"
	"time"

	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// PruneChatsUseCase deletes chat records created before a cutoff. Invoked
// from the retention worker, never from a user-facing route.
type PruneChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewPruneChatsUseCase(repo repository.ChatRepository) *PruneChatsUseCase {
	return &PruneChatsUseCase{Repo: repo}
}

func (uc *PruneChatsUseCase) Execute(ctx context.Context, cutoff time.Time) (int64, error) {
	if cutoff.IsZero() {
		return 0, fmt.Errorf("%w: cutoff is required", ErrInvalidInput)
	}
	n, err := uc.Repo.DeleteChatsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return n, nil
}
