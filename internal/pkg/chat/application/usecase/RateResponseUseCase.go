package usecase

import (
	"context"
	"fmt"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// RateResponseInput addresses one assistant response within a chat record.
type RateResponseInput struct {
	ChatID       string
	MessageIndex int
	Rating       string
	UserID       string
}

// RateResponseUseCase stores a like/dislike verdict for an assistant response.
type RateResponseUseCase struct {
	Repo repository.ChatRepository
}

func NewRateResponseUseCase(repo repository.ChatRepository) *RateResponseUseCase {
	return &RateResponseUseCase{Repo: repo}
}

func (uc *RateResponseUseCase) Execute(ctx context.Context, in RateResponseInput) error {
	rating, err := chat.NewRating(in.ChatID, in.MessageIndex, in.Rating, in.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := uc.Repo.InsertRating(ctx, rating); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
