package usecase

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// DeleteChatSessionUseCase removes any chat record by id (admin surface,
// not scoped by owner). The owner's cached history listing is not
// invalidated here; it may serve the deleted chat until the cache TTL
// expires.
type DeleteChatSessionUseCase struct {
	Repo repository.ChatRepository
}

func NewDeleteChatSessionUseCase(repo repository.ChatRepository) *DeleteChatSessionUseCase {
	return &DeleteChatSessionUseCase{Repo: repo}
}

func (uc *DeleteChatSessionUseCase) Execute(ctx context.Context, chatID string) error {
	if chatID == "" {
		return fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}
	if err := uc.Repo.DeleteChatByID(ctx, chatID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, chatID)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
