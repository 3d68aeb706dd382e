package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTitle(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want string
	}{
		{"nil record", nil, UntitledChat},
		{"no turns", &Record{}, UntitledChat},
		{"blank first message", &Record{Messages: []Turn{{UserMessage: "   "}}}, UntitledChat},
		{"first user message", &Record{Messages: []Turn{
			{UserMessage: "How do goroutines work?", AIResponse: "..."},
			{UserMessage: "and channels?", AIResponse: "..."},
		}}, "How do goroutines work?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Title())
		})
	}
}

func TestNewTurnTrimsAndValidates(t *testing.T) {
	turn, err := NewTurn("  hello  ", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", turn.UserMessage)

	_, err = NewTurn("   ", "hi")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestNewRatingValidation(t *testing.T) {
	r, err := NewRating("chat-1", 0, RatingDislike, "user-1")
	require.NoError(t, err)
	assert.Equal(t, RatingDislike, r.Value)

	_, err = NewRating("chat-1", 0, "love", "user-1")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = NewRating("", 0, RatingLike, "user-1")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = NewRating("chat-1", -2, RatingLike, "user-1")
	assert.ErrorIs(t, err, ErrMissingFields)
}
