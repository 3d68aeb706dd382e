package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
)

func TestChatHistoryTitlesAndScoping(t *testing.T) {
	repo := newMemRepo()
	repo.seed("chat-1", "user-1", []chat.Turn{{UserMessage: "What is Go?", AIResponse: "A language."}})
	repo.seed("chat-2", "user-1", nil)
	repo.seed("chat-3", "user-2", []chat.Turn{{UserMessage: "not yours", AIResponse: "nope"}})
	uc := NewChatHistoryUseCase(repo)

	entries, err := uc.Execute(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := map[string]HistoryEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	assert.Equal(t, "What is Go?", byID["chat-1"].Title)
	assert.Equal(t, chat.UntitledChat, byID["chat-2"].Title)
	assert.NotNil(t, byID["chat-2"].Messages, "empty chats serialize as [] not null")
	assert.NotContains(t, byID, "chat-3")
}

func TestChatHistoryRequiresUser(t *testing.T) {
	uc := NewChatHistoryUseCase(newMemRepo())
	_, err := uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChatHistoryStoreFailure(t *testing.T) {
	repo := newMemRepo()
	repo.failAll = true
	uc := NewChatHistoryUseCase(repo)
	_, err := uc.Execute(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrPersistence)
}
