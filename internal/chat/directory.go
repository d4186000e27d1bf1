// Package chat implements the user directory and the message feed on top of
// the data stores. Every successful write is announced on a Publisher so live
// queries can refresh.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/live"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/presence"
)

// DefaultRosterLimit caps ListRecentActiveUsers when no limit is given.
const DefaultRosterLimit = 10

// Publisher receives a notification after each successful write.
// *live.Broker satisfies it.
type Publisher interface {
	Publish(table, id string)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string) {}

// Directory resolves display names to users and answers presence queries.
type Directory struct {
	users data.UsersStore
	msgs  data.MessagesStore
	clock Clock
	pub   Publisher
}

// NewDirectory wires a Directory. A nil clock uses the wall clock and a nil
// publisher drops notifications.
func NewDirectory(users data.UsersStore, msgs data.MessagesStore, clock Clock, pub Publisher) *Directory {
	if clock == nil {
		clock = NewClock(nil)
	}
	if pub == nil {
		pub = nopPublisher{}
	}
	return &Directory{users: users, msgs: msgs, clock: clock, pub: pub}
}

// ResolveOrCreateUser finds the user by email (when given) and then by name,
// marking them seen now. If neither matches a new user is created.
//
// Two concurrent calls for a new identity may both create a user.
func (d *Directory) ResolveOrCreateUser(ctx context.Context, name, email string) (*data.User, error) {
	name = normalize.Name(name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	return d.resolve(ctx, name, normalize.Email(email))
}

// resolve expects name and email already normalized.
func (d *Directory) resolve(ctx context.Context, name, email string) (*data.User, error) {
	now := d.clock.Now()

	existing, err := d.lookup(ctx, name, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		u, err := d.users.TouchLastSeen(ctx, existing.ID, now)
		if err != nil {
			return nil, fmt.Errorf("touch user %s: %w", existing.ID, err)
		}
		d.pub.Publish(live.TableUsers, u.ID)
		return u, nil
	}

	u, err := d.users.Insert(ctx, &data.User{Name: name, Email: email, LastSeen: now})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	metrics.UsersCreated.Inc()
	logger := logging.WithUserID(u.ID)
	logger.Info().
		Str("component", "directory").
		Str("name", u.Name).
		Msg("user created")
	d.pub.Publish(live.TableUsers, u.ID)
	return u, nil
}

func (d *Directory) lookup(ctx context.Context, name, email string) (*data.User, error) {
	if email != "" {
		u, err := d.users.FindByEmail(ctx, email)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, data.ErrNotFound) {
			return nil, fmt.Errorf("find user by email: %w", err)
		}
	}

	u, err := d.users.FindByName(ctx, name)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, data.ErrNotFound) {
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return nil, nil
}

// TouchActivity marks userID as seen now. Unknown ids are ignored.
func (d *Directory) TouchActivity(ctx context.Context, userID string) error {
	u, err := d.users.TouchLastSeen(ctx, userID, d.clock.Now())
	if errors.Is(err, data.ErrNotFound) {
		metrics.ActivityTouches.WithLabelValues("ignored").Inc()
		logger := logging.WithUserID(userID)
		logger.Debug().
			Str("component", "directory").
			Msg("activity for unknown user ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("touch activity: %w", err)
	}
	metrics.ActivityTouches.WithLabelValues("ok").Inc()
	d.pub.Publish(live.TableUsers, u.ID)
	return nil
}

// GetUser returns the user or data.ErrNotFound.
func (d *Directory) GetUser(ctx context.Context, userID string) (*data.User, error) {
	return d.users.Get(ctx, userID)
}

// ListUsersWithMessageCounts returns every user with their message count,
// most recently seen first.
func (d *Directory) ListUsersWithMessageCounts(ctx context.Context) ([]data.UserWithCount, error) {
	users, err := d.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]data.UserWithCount, 0, len(users))
	for _, u := range users {
		n, err := d.msgs.CountForUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("count messages for %s: %w", u.ID, err)
		}
		out = append(out, data.UserWithCount{User: u, MessageCount: n})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].User.LastSeen > out[j].User.LastSeen
	})
	return out, nil
}

// CountActiveUsers counts users seen within presence.OnlineWindow.
func (d *Directory) CountActiveUsers(ctx context.Context) (int64, error) {
	return d.users.CountSeenSince(ctx, presence.Cutoff(d.clock.Now(), presence.OnlineWindow))
}

// ListRecentActiveUsers returns up to limit users seen within
// presence.RecentWindow, most recent first.
func (d *Directory) ListRecentActiveUsers(ctx context.Context, limit int64) ([]*data.User, error) {
	if limit <= 0 {
		limit = DefaultRosterLimit
	}
	users, err := d.users.ListSeenSince(ctx, presence.Cutoff(d.clock.Now(), presence.RecentWindow), limit)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].LastSeen > users[j].LastSeen })
	return users, nil
}
