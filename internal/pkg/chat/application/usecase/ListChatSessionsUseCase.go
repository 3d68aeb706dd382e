package usecase

import (
	"context"
	"fmt"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// ListChatSessionsUseCase returns every chat record for the admin surface.
type ListChatSessionsUseCase struct {
	Repo repository.ChatRepository
}

func NewListChatSessionsUseCase(repo repository.ChatRepository) *ListChatSessionsUseCase {
	return &ListChatSessionsUseCase{Repo: repo}
}

func (uc *ListChatSessionsUseCase) Execute(ctx context.Context) ([]chat.Record, error) {
	recs, err := uc.Repo.ListAllChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return recs, nil
}
