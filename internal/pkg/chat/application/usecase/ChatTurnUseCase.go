package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// ChatTurnInput carries one synchronous chat turn request. ChatID empty
// means "start a new chat"; Category defaults to the casual label.
type ChatTurnInput struct {
	UserID   string
	Message  string
	ChatID   string
	Category string
}

// ChatTurnResult is the answer returned to the HTTP caller. Publishing the
// assistant message into the room relay is the caller's job, outside this
// use case's guarantees.
type ChatTurnResult struct {
	ChatID string
	Answer string
}

// ChatTurnUseCase executes one chat turn: validate, complete, persist.
// Hexagonal: depends on the repository and completer ports only.
// One class per use case (own file).
type ChatTurnUseCase struct {
	Repo      repository.ChatRepository
	Completer Completer
}

func NewChatTurnUseCase(repo repository.ChatRepository, completer Completer) *ChatTurnUseCase {
	return &ChatTurnUseCase{Repo: repo, Completer: completer}
}

// Execute runs the turn. The read-modify-write on an existing chat is not
// transactional: two racing turns on the same chat are last-write-wins over
// the whole message sequence. Nothing is persisted when the completion call
// fails.
func (uc *ChatTurnUseCase) Execute(ctx context.Context, in ChatTurnInput) (*ChatTurnResult, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" || in.UserID == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	answer, err := uc.Completer.Complete(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	turn, err := chat.NewTurn(message, answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if in.ChatID != "" {
		rec, err := uc.Repo.GetChat(ctx, in.ChatID, in.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, in.ChatID)
			}
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		rec.AppendTurn(turn)
		if err := uc.Repo.UpdateMessages(ctx, in.ChatID, rec.Messages); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return &ChatTurnResult{ChatID: in.ChatID, Answer: answer}, nil
	}

	category := in.Category
	if category == "" {
		category = chat.DefaultCategory
	}
	id, err := uc.Repo.InsertChat(ctx, in.UserID, []chat.Turn{turn}, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &ChatTurnResult{ChatID: id, Answer: answer}, nil
}
