package repository

import (
	"context"
	"errors"
	"time"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
)

// ErrNotFound signals that no row matched the (id, user) scope. Adapters map
// their driver's no-rows value to this so use cases never import the driver.
var ErrNotFound = errors.New("repository: chat not found")

// ChatRepository defines persistence operations for the chat domain.
// Every user-facing operation is scoped by userID; there is no cross-user
// visibility. The messages sequence is written whole (no per-turn append at
// the storage level).
type ChatRepository interface {
	// GetChat returns the record only if it is owned by userID.
	GetChat(ctx context.Context, id string, userID string) (*chat.Record, error)

	// UpdateMessages replaces the record's whole message sequence.
	UpdateMessages(ctx context.Context, id string, turns []chat.Turn) error

	// InsertChat creates a record and returns the store-assigned id.
	InsertChat(ctx context.Context, userID string, turns []chat.Turn, category string) (string, error)

	// DeleteChat removes the record when owned by userID; ErrNotFound otherwise.
	DeleteChat(ctx context.Context, id string, userID string) error

	// ListChats returns the user's records ordered by creation time, newest first.
	ListChats(ctx context.Context, userID string) ([]chat.Record, error)

	// InsertRating stores a response rating.
	InsertRating(ctx context.Context, r chat.Rating) error

	// GetUserRole returns the role for userID; ErrNotFound when absent.
	GetUserRole(ctx context.Context, userID string) (string, error)

	// ListAllChats returns every chat record (admin surface).
	ListAllChats(ctx context.Context) ([]chat.Record, error)

	// DeleteChatByID removes a record regardless of owner (admin surface).
	DeleteChatByID(ctx context.Context, id string) error

	// DeleteChatsBefore removes records created before cutoff and reports
	// how many rows went away (retention pruning).
	DeleteChatsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
