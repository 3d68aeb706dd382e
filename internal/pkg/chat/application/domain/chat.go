package chat

import (
	"errors"
	"strings"
	"time"
)

// Domain-level errors for chat behaviors
var (
	ErrEmptyMessage  = errors.New("chat: message is required")
	ErrMissingFields = errors.New("chat: missing required fields")
	ErrInvalidRating = errors.New("chat: rating must be \"like\" or \"dislike\"")
)

// DefaultCategory is applied when a request omits the category label.
const DefaultCategory = "casual"

// UntitledChat is the history title shown for a record with no turns.
const UntitledChat = "Untitled Chat"

// Turn is one user-message/assistant-response pair. Turns are stored as a
// jsonb array on the chat record and are append-only from this package's
// perspective.
type Turn struct {
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
}

// Record is a persisted, user-owned conversation with the assistant.
//
// Notes:
//   - Messages is read and written as a whole sequence; concurrent turns on
//     the same record are last-write-wins. The application layer documents
//     this as an accepted gap rather than hiding it here.
//   - Only the owning user may read, modify or delete a record; repositories
//     enforce the scoping, this type only shapes the data.
type Record struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Messages  []Turn    `db:"messages" json:"messages"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Title derives the history listing title: the first user message, or a
// placeholder when the record has no turns yet.
func (r *Record) Title() string {
	if r == nil || len(r.Messages) == 0 {
		return UntitledChat
	}
	if t := strings.TrimSpace(r.Messages[0].UserMessage); t != "" {
		return t
	}
	return UntitledChat
}

// AppendTurn adds a completed turn to the message sequence.
func (r *Record) AppendTurn(t Turn) {
	r.Messages = append(r.Messages, t)
}

// NewTurn validates and normalizes a turn before it is persisted.
func NewTurn(userMessage, aiResponse string) (Turn, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return Turn{}, ErrEmptyMessage
	}
	return Turn{UserMessage: userMessage, AIResponse: aiResponse}, nil
}
