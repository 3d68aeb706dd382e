package chat

import "time"

// Rating values accepted from clients.
const (
	RatingLike    = "like"
	RatingDislike = "dislike"
)

// Rating is a user's verdict on one assistant response, addressed by the
// turn's index within the chat record.
type Rating struct {
	ID           int64     `db:"id"`
	ChatID       string    `db:"chat_id"`
	MessageIndex int       `db:"message_index"`
	Value        string    `db:"rating"`
	UserID       string    `db:"user_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewRating validates rating input before persistence.
func NewRating(chatID string, messageIndex int, value, userID string) (Rating, error) {
	if chatID == "" || userID == "" || messageIndex < 0 {
		return Rating{}, ErrMissingFields
	}
	if value != RatingLike && value != RatingDislike {
		return Rating{}, ErrInvalidRating
	}
	return Rating{
		ChatID:       chatID,
		MessageIndex: messageIndex,
		Value:        value,
		UserID:       userID,
	}, nil
}
