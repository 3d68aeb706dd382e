package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/application/domain"
	repository "github.com/Kalashsatyapal/ChatNova/internal/pkg/chat/persistence/repository/port"
)

// PgChatRepository persists chat records in Postgres via pgx. The messages
// column is jsonb; pgx marshals []chat.Turn to and from it directly.
type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

var _ repository.ChatRepository = (*PgChatRepository)(nil)

func (r *PgChatRepository) GetChat(ctx context.Context, id string, userID string) (*chat.Record, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	var rec chat.Record
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, user_id::text, messages, category, created_at
		FROM chats
		WHERE id = $1::uuid AND user_id = $2::uuid
	`, id, userID).Scan(&rec.ID, &rec.UserID, &rec.Messages, &rec.Category, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PgChatRepository) UpdateMessages(ctx context.Context, id string, turns []chat.Turn) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	// Whole-sequence replace: concurrent turns on the same chat are
	// last-write-wins, matching the service contract.
	ct, err := r.pool.Exec(ctx, `
		UPDATE chats SET messages = $2 WHERE id = $1::uuid
	`, id, turns)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgChatRepository) InsertChat(ctx context.Context, userID string, turns []chat.Turn, category string) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chats (user_id, messages, category)
		VALUES ($1::uuid, $2, $3)
		RETURNING id::text
	`, userID, turns, category).Scan(&id)
	return id, err
}

func (r *PgChatRepository) DeleteChat(ctx context.Context, id string, userID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		DELETE FROM chats WHERE id = $1::uuid AND user_id = $2::uuid
	`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgChatRepository) ListChats(ctx context.Context, userID string) ([]chat.Record, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, messages, category, created_at
		FROM chats
		WHERE user_id = $1::uuid
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *PgChatRepository) InsertRating(ctx context.Context, rating chat.Rating) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ai_ratings (chat_id, message_index, rating, user_id)
		VALUES ($1::uuid, $2, $3, $4::uuid)
	`, rating.ChatID, rating.MessageIndex, rating.Value, rating.UserID)
	return err
}

func (r *PgChatRepository) GetUserRole(ctx context.Context, userID string) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgChatRepository: nil pool")
	}
	var role string
	err := r.pool.QueryRow(ctx, `
		SELECT role FROM user_roles WHERE user_id = $1::uuid
	`, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	return role, err
}

func (r *PgChatRepository) ListAllChats(ctx context.Context) ([]chat.Record, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, messages, category, created_at
		FROM chats
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *PgChatRepository) DeleteChatByID(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM chats WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PgChatRepository) DeleteChatsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgChatRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM chats WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func scanRecords(rows pgx.Rows) ([]chat.Record, error) {
	var recs []chat.Record
	for rows.Next() {
		var rec chat.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Messages, &rec.Category, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return recs, nil
}
