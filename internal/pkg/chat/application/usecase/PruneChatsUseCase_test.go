package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneChatsDeletesOnlyOldRecords(t *testing.T) {
	repo := newMemRepo()
	repo.seed("old", "user-1", nil)
	repo.seed("new", "user-1", nil)
	repo.chats["old"].CreatedAt = time.Now().AddDate(0, 0, -90)
	uc := NewPruneChatsUseCase(repo)

	n, err := uc.Execute(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NotContains(t, repo.chats, "old")
	assert.Contains(t, repo.chats, "new")
}

func TestPruneChatsRejectsZeroCutoff(t *testing.T) {
	uc := NewPruneChatsUseCase(newMemRepo())
	_, err := uc.Execute(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
