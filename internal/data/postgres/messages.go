package postgres

import (
	"context"
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/google/uuid"
)

const messageColumns = `id, user_id, author, body, timestamp_ms`

const (
	insertMessageQuery = `INSERT INTO messages (id, user_id, author, body, timestamp_ms)
		VALUES ($1, $2, $3, $4, $5)`

	recentMessagesQuery = `SELECT ` + messageColumns + ` FROM messages
		ORDER BY timestamp_ms DESC, seq DESC LIMIT $1`

	recentUserMessagesQuery = `SELECT ` + messageColumns + ` FROM messages
		WHERE user_id = $1 ORDER BY timestamp_ms DESC, seq DESC LIMIT $2`

	countMessagesQuery = `SELECT COUNT(*) FROM messages`

	countUserMessagesQuery = `SELECT COUNT(*) FROM messages WHERE user_id = $1`
)

// MessagesStore implements data.MessagesStore on the messages table.
type MessagesStore struct {
	db DBTX
}

func NewMessagesStore(db DBTX) *MessagesStore {
	return &MessagesStore{db: db}
}

func (r *MessagesStore) Insert(ctx context.Context, msg *data.Message) (*data.Message, error) {
	if _, err := uuid.Parse(msg.UserID); err != nil {
		return nil, fmt.Errorf("insert message: invalid user id %q: %w", msg.UserID, err)
	}

	m := *msg
	m.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, insertMessageQuery, m.ID, m.UserID, m.Author, m.Body, m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &m, nil
}

func (r *MessagesStore) Recent(ctx context.Context, limit int64) ([]*data.Message, error) {
	return r.queryMany(ctx, recentMessagesQuery, limit)
}

func (r *MessagesStore) RecentForUser(ctx context.Context, userID string, limit int64) ([]*data.Message, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return []*data.Message{}, nil
	}
	return r.queryMany(ctx, recentUserMessagesQuery, userID, limit)
}

func (r *MessagesStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countMessagesQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *MessagesStore) CountForUser(ctx context.Context, userID string) (int64, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return 0, nil
	}
	var n int64
	if err := r.db.QueryRowContext(ctx, countUserMessagesQuery, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *MessagesStore) queryMany(ctx context.Context, query string, args ...any) ([]*data.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	msgs := []*data.Message{}
	for rows.Next() {
		var m data.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Author, &m.Body, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return msgs, nil
}
