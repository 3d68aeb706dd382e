package usecase

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// DeleteChatUseCase removes a chat record owned by the caller. Deleting a
// record that is absent or owned by someone else fails with ErrNotFound and
// leaves the store untouched.
type DeleteChatUseCase struct {
	Repo repository.ChatRepository
}

func NewDeleteChatUseCase(repo repository.ChatRepository) *DeleteChatUseCase {
	return &DeleteChatUseCase{Repo: repo}
}

func (uc *DeleteChatUseCase) Execute(ctx context.Context, chatID string, userID string) error {
	if chatID == "" {
		return fmt.Errorf("%w: chat id is required", ErrInvalidInput)
	}
	if err := uc.Repo.DeleteChat(ctx, chatID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, chatID)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
