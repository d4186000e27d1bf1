package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/live"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/normalize"
)

// DefaultMessageLimit caps message listings when no limit is given.
const DefaultMessageLimit = 50

// Feed stores and lists messages.
type Feed struct {
	dir   *Directory
	users data.UsersStore
	msgs  data.MessagesStore
	clock Clock
	pub   Publisher
}

// NewFeed shares the directory's stores, clock and publisher.
func NewFeed(dir *Directory) *Feed {
	return &Feed{dir: dir, users: dir.users, msgs: dir.msgs, clock: dir.clock, pub: dir.pub}
}

// SendMessage resolves the author and stores body under them. The author
// name and body are trimmed and must not be empty.
func (f *Feed) SendMessage(ctx context.Context, author, body, email string) (*data.Message, error) {
	author = normalize.Name(author)
	if author == "" {
		return nil, invalid("author", "author name is required")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, invalid("body", "message cannot be empty")
	}

	u, err := f.dir.resolve(ctx, author, normalize.Email(email))
	if err != nil {
		return nil, err
	}

	msg, err := f.msgs.Insert(ctx, &data.Message{
		UserID:    u.ID,
		Author:    author,
		Body:      body,
		Timestamp: f.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	metrics.MessagesSent.Inc()
	logger := logging.WithComponent("feed")
	logger.Debug().
		Str("message_id", msg.ID).
		Str("user_id", msg.UserID).
		Msg("message stored")
	f.pub.Publish(live.TableMessages, msg.ID)
	return msg, nil
}

// ListRecentMessages returns the newest limit messages, oldest first.
func (f *Feed) ListRecentMessages(ctx context.Context, limit int64) ([]*data.Message, error) {
	msgs, err := f.msgs.Recent(ctx, messageLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	slices.Reverse(msgs)
	return msgs, nil
}

// ListRecentMessagesWithUsers is ListRecentMessages joined with each author.
// A message whose user is gone gets a stand-in built from the message.
func (f *Feed) ListRecentMessagesWithUsers(ctx context.Context, limit int64) ([]data.MessageWithUser, error) {
	msgs, err := f.ListRecentMessages(ctx, limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]*data.User)
	out := make([]data.MessageWithUser, 0, len(msgs))
	for _, m := range msgs {
		u, ok := seen[m.UserID]
		if !ok {
			u, err = f.users.Get(ctx, m.UserID)
			switch {
			case errors.Is(err, data.ErrNotFound):
				u = nil
			case err != nil:
				return nil, fmt.Errorf("load author %s: %w", m.UserID, err)
			}
			seen[m.UserID] = u
		}

		if u == nil {
			out = append(out, data.MessageWithUser{
				Message:  m,
				User:     &data.User{ID: m.UserID, Name: m.Author},
				Fallback: true,
			})
			continue
		}
		out = append(out, data.MessageWithUser{Message: m, User: u})
	}
	return out, nil
}

// ListMessagesForUser returns userID's newest limit messages, oldest first.
func (f *Feed) ListMessagesForUser(ctx context.Context, userID string, limit int64) ([]*data.Message, error) {
	msgs, err := f.msgs.RecentForUser(ctx, userID, messageLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("messages for user: %w", err)
	}
	slices.Reverse(msgs)
	return msgs, nil
}

func (f *Feed) CountAllMessages(ctx context.Context) (int64, error) {
	return f.msgs.Count(ctx)
}

func (f *Feed) CountMessagesForUser(ctx context.Context, userID string) (int64, error) {
	return f.msgs.CountForUser(ctx, userID)
}

func messageLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultMessageLimit
	}
	return limit
}
