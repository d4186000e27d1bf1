// Package data provides the chat models and the store contracts every backend
// implements. The engines live in the mongo, postgres and bolt subpackages.
package data

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// UsersStore is the users table contract.
//
// Lookups by email and name are exact matches on the stored value. List
// methods that take a limit return at most limit records.
type UsersStore interface {
	// Insert stores a new user and returns it with its assigned ID.
	Insert(ctx context.Context, user *User) (*User, error)
	// Get returns the user with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*User, error)
	// FindByEmail returns the first user with the given email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByName returns the first user with the given name or ErrNotFound.
	FindByName(ctx context.Context, name string) (*User, error)
	// TouchLastSeen raises lastSeen to at (never lowers it) and returns the
	// refreshed record, or ErrNotFound.
	TouchLastSeen(ctx context.Context, id string, at int64) (*User, error)
	// List returns every user in store order.
	List(ctx context.Context) ([]*User, error)
	// ListSeenSince returns users with lastSeen >= since, newest lastSeen first.
	ListSeenSince(ctx context.Context, since int64, limit int64) ([]*User, error)
	// CountSeenSince counts users with lastSeen >= since.
	CountSeenSince(ctx context.Context, since int64) (int64, error)
}

// MessagesStore is the messages table contract.
//
// Recent and RecentForUser return newest first; callers that display a feed
// reverse the slice.
type MessagesStore interface {
	// Insert stores a new message and returns it with its assigned ID.
	Insert(ctx context.Context, msg *Message) (*Message, error)
	// Recent returns the limit newest messages by timestamp, newest first.
	Recent(ctx context.Context, limit int64) ([]*Message, error)
	// RecentForUser is Recent restricted to one user.
	RecentForUser(ctx context.Context, userID string, limit int64) ([]*Message, error)
	// Count returns the number of stored messages.
	Count(ctx context.Context) (int64, error)
	// CountForUser returns the number of messages posted by userID.
	CountForUser(ctx context.Context, userID string) (int64, error)
}

// Backend bundles the stores of one storage engine with its lifecycle hooks.
type Backend struct {
	Name     string
	Users    UsersStore
	Messages MessagesStore
	Ping     func(ctx context.Context) error
	Close    func(ctx context.Context) error
}
