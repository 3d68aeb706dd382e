package usecase

import (
	"context"
	"fmt"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// HistoryEntry is one chat record shaped for the history listing.
type HistoryEntry struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Messages []chat.Turn `json:"messages"`
	Category string      `json:"category"`
}

// ChatHistoryUseCase lists the caller's chats, newest first.
type ChatHistoryUseCase struct {
	Repo repository.ChatRepository
}

func NewChatHistoryUseCase(repo repository.ChatRepository) *ChatHistoryUseCase {
	return &ChatHistoryUseCase{Repo: repo}
}

func (uc *ChatHistoryUseCase) Execute(ctx context.Context, userID string) ([]HistoryEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	recs, err := uc.Repo.ListChats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	entries := make([]HistoryEntry, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		category := rec.Category
		if category == "" {
			category = chat.DefaultCategory
		}
		messages := rec.Messages
		if messages == nil {
			messages = []chat.Turn{}
		}
		entries = append(entries, HistoryEntry{
			ID:       rec.ID,
			Title:    rec.Title(),
			Messages: messages,
			Category: category,
		})
	}
	return entries, nil
}
