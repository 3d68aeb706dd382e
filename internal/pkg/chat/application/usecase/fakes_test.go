package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

var errStore = errors.New("store down")

// memRepo is an in-memory ChatRepository with the same ownership scoping as
// the Postgres adapter.
type memRepo struct {
	chats   map[string]*chat.Record
	ratings []chat.Rating
	roles   map[string]string
	nextID  int
	failAll bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		chats: make(map[string]*chat.Record),
		roles: make(map[string]string),
	}
}

func (m *memRepo) seed(id, userID string, turns []chat.Turn) {
	m.chats[id] = &chat.Record{
		ID:        id,
		UserID:    userID,
		Messages:  turns,
		Category:  chat.DefaultCategory,
		CreatedAt: time.Now(),
	}
}

func (m *memRepo) GetChat(ctx context.Context, id, userID string) (*chat.Record, error) {
	if m.failAll {
		return nil, errStore
	}
	rec, ok := m.chats[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *rec
	cp.Messages = append([]chat.Turn(nil), rec.Messages...)
	return &cp, nil
}

func (m *memRepo) UpdateMessages(ctx context.Context, id string, turns []chat.Turn) error {
	if m.failAll {
		return errStore
	}
	rec, ok := m.chats[id]
	if !ok {
		return repository.ErrNotFound
	}
	rec.Messages = turns
	return nil
}

func (m *memRepo) InsertChat(ctx context.Context, userID string, turns []chat.Turn, category string) (string, error) {
	if m.failAll {
		return "", errStore
	}
	m.nextID++
	id := "chat-" + strconv.Itoa(m.nextID)
	m.chats[id] = &chat.Record{
		ID:        id,
		UserID:    userID,
		Messages:  turns,
		Category:  category,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *memRepo) DeleteChat(ctx context.Context, id, userID string) error {
	if m.failAll {
		return errStore
	}
	rec, ok := m.chats[id]
	if !ok || rec.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.chats, id)
	return nil
}

func (m *memRepo) ListChats(ctx context.Context, userID string) ([]chat.Record, error) {
	if m.failAll {
		return nil, errStore
	}
	var out []chat.Record
	for _, rec := range m.chats {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *memRepo) InsertRating(ctx context.Context, r chat.Rating) error {
	if m.failAll {
		return errStore
	}
	m.ratings = append(m.ratings, r)
	return nil
}

func (m *memRepo) GetUserRole(ctx context.Context, userID string) (string, error) {
	role, ok := m.roles[userID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return role, nil
}

func (m *memRepo) ListAllChats(ctx context.Context) ([]chat.Record, error) {
	var out []chat.Record
	for _, rec := range m.chats {
		out = append(out, *rec)
	}
	return out, nil
}

func (m *memRepo) DeleteChatByID(ctx context.Context, id string) error {
	if _, ok := m.chats[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.chats, id)
	return nil
}

func (m *memRepo) DeleteChatsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, rec := range m.chats {
		if rec.CreatedAt.Before(cutoff) {
			delete(m.chats, id)
			n++
		}
	}
	return n, nil
}

// fakeCompleter returns a canned answer and records the prompts it saw.
type fakeCompleter struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}
