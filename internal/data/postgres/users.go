package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/google/uuid"
)

const userColumns = `id, name, email, avatar, last_seen`

const (
	insertUserQuery = `INSERT INTO users (id, name, email, avatar, last_seen)
		VALUES ($1, $2, $3, $4, $5)`

	getUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	userByEmailQuery = `SELECT ` + userColumns + ` FROM users
		WHERE email = $1 ORDER BY created_at, id LIMIT 1`

	userByNameQuery = `SELECT ` + userColumns + ` FROM users
		WHERE name = $1 ORDER BY created_at, id LIMIT 1`

	touchUserQuery = `UPDATE users SET last_seen = GREATEST(last_seen, $2)
		WHERE id = $1 RETURNING ` + userColumns

	listUsersQuery = `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	usersSeenSinceQuery = `SELECT ` + userColumns + ` FROM users
		WHERE last_seen >= $1 ORDER BY last_seen DESC LIMIT $2`

	countUsersSeenSinceQuery = `SELECT COUNT(*) FROM users WHERE last_seen >= $1`
)

// UsersStore implements data.UsersStore on the users table.
type UsersStore struct {
	db DBTX
}

func NewUsersStore(db DBTX) *UsersStore {
	return &UsersStore{db: db}
}

func (r *UsersStore) Insert(ctx context.Context, user *data.User) (*data.User, error) {
	u := *user
	u.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, insertUserQuery,
		u.ID, u.Name, nullString(u.Email), nullString(u.Avatar), u.LastSeen)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

func (r *UsersStore) Get(ctx context.Context, id string) (*data.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, data.ErrNotFound
	}
	return r.queryOne(ctx, getUserQuery, id)
}

func (r *UsersStore) FindByEmail(ctx context.Context, email string) (*data.User, error) {
	return r.queryOne(ctx, userByEmailQuery, email)
}

func (r *UsersStore) FindByName(ctx context.Context, name string) (*data.User, error) {
	return r.queryOne(ctx, userByNameQuery, name)
}

func (r *UsersStore) TouchLastSeen(ctx context.Context, id string, at int64) (*data.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, data.ErrNotFound
	}
	return r.queryOne(ctx, touchUserQuery, id, at)
}

func (r *UsersStore) List(ctx context.Context) ([]*data.User, error) {
	return r.queryMany(ctx, listUsersQuery)
}

func (r *UsersStore) ListSeenSince(ctx context.Context, since int64, limit int64) ([]*data.User, error) {
	return r.queryMany(ctx, usersSeenSinceQuery, since, limit)
}

func (r *UsersStore) CountSeenSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countUsersSeenSinceQuery, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *UsersStore) queryOne(ctx context.Context, query string, args ...any) (*data.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, data.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *UsersStore) queryMany(ctx context.Context, query string, args ...any) ([]*data.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []*data.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*data.User, error) {
	var (
		u             data.User
		email, avatar sql.NullString
	)
	if err := s.Scan(&u.ID, &u.Name, &email, &avatar, &u.LastSeen); err != nil {
		return nil, err
	}
	u.Email = email.String
	u.Avatar = avatar.String
	return &u, nil
}

// nullString maps "" to SQL NULL so optional columns stay absent.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
