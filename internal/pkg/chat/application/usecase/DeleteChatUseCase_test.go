package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
)

func TestDeleteChatOwned(t *testing.T) {
	repo := newMemRepo()
	repo.seed("chat-1", "user-1", nil)
	uc := NewDeleteChatUseCase(repo)

	require.NoError(t, uc.Execute(context.Background(), "chat-1", "user-1"))
	assert.NotContains(t, repo.chats, "chat-1")
}

func TestDeleteChatNotOwnedLeavesRecord(t *testing.T) {
	repo := newMemRepo()
	repo.seed("chat-1", "user-2", []chat.Turn{{UserMessage: "hi", AIResponse: "yo"}})
	uc := NewDeleteChatUseCase(repo)

	err := uc.Execute(context.Background(), "chat-1", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, repo.chats, "chat-1", "foreign delete must leave the record in place")
}

func TestDeleteChatMissingID(t *testing.T) {
	uc := NewDeleteChatUseCase(newMemRepo())
	err := uc.Execute(context.Background(), "", "user-1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteChatAbsent(t *testing.T) {
	uc := NewDeleteChatUseCase(newMemRepo())
	err := uc.Execute(context.Background(), "no-such-chat", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
