package main

import (
	"context"
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/live"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
)

// liveQuery is a watchable read: the tables whose changes invalidate it and
// how to compute a snapshot. Queries with equal keys share one watcher.
type liveQuery struct {
	key     string
	name    string
	tables  []string
	refresh bool
	run     func(ctx context.Context) (*v1.WatchResponse, error)
}

// resolveQuery validates req and binds it to the directory or the feed.
func (s *Server) resolveQuery(req *v1.WatchRequest) (*liveQuery, error) {
	name := req.GetQuery()
	userID := req.GetUserId()
	limit := req.GetLimit()

	q := &liveQuery{name: name}
	switch name {
	case v1.QueryRecentMessages:
		limit = orDefault(limit, chat.DefaultMessageLimit)
		q.tables = []string{live.TableMessages}
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			msgs, err := s.feed.ListRecentMessages(ctx, limit)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, Messages: messagesToProto(msgs)}, nil
		}

	case v1.QueryRecentMessagesWithUsers:
		limit = orDefault(limit, chat.DefaultMessageLimit)
		q.tables = []string{live.TableMessages, live.TableUsers}
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			items, err := s.feed.ListRecentMessagesWithUsers(ctx, limit)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, MessagesWithUsers: joinedToProto(items)}, nil
		}

	case v1.QueryMessagesForUser:
		if userID == "" {
			return nil, &chat.ValidationError{Field: "userId", Message: "userId is required for " + name}
		}
		limit = orDefault(limit, chat.DefaultMessageLimit)
		q.tables = []string{live.TableMessages}
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			msgs, err := s.feed.ListMessagesForUser(ctx, userID, limit)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, Messages: messagesToProto(msgs)}, nil
		}

	case v1.QueryMessageCount:
		limit = 0
		q.tables = []string{live.TableMessages}
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			n, err := s.feed.CountAllMessages(ctx)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, Count: n}, nil
		}

	case v1.QueryUserMessageCount:
		if userID == "" {
			return nil, &chat.ValidationError{Field: "userId", Message: "userId is required for " + name}
		}
		limit = 0
		q.tables = []string{live.TableMessages}
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			n, err := s.feed.CountMessagesForUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, Count: n}, nil
		}

	case v1.QueryUsersWithCounts:
		limit = 0
		q.tables = []string{live.TableUsers, live.TableMessages}
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			items, err := s.dir.ListUsersWithMessageCounts(ctx)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, UsersWithCounts: countsToProto(items)}, nil
		}

	case v1.QueryActiveUserCount:
		limit = 0
		q.tables = []string{live.TableUsers}
		q.refresh = true
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			n, err := s.dir.CountActiveUsers(ctx)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, Count: n}, nil
		}

	case v1.QueryRecentActiveUsers:
		limit = orDefault(limit, chat.DefaultRosterLimit)
		q.tables = []string{live.TableUsers}
		q.refresh = true
		q.run = func(ctx context.Context) (*v1.WatchResponse, error) {
			users, err := s.dir.ListRecentActiveUsers(ctx, limit)
			if err != nil {
				return nil, err
			}
			return &v1.WatchResponse{Query: name, Users: usersToProto(users)}, nil
		}

	default:
		return nil, &chat.ValidationError{Field: "query", Message: fmt.Sprintf("unknown query %q", name)}
	}

	if !q.usesUser() {
		userID = ""
	}
	q.key = fmt.Sprintf("%s|%s|%d", name, userID, limit)
	return q, nil
}

func (q *liveQuery) usesUser() bool {
	return q.name == v1.QueryMessagesForUser || q.name == v1.QueryUserMessageCount
}

func orDefault(limit, def int64) int64 {
	if limit <= 0 {
		return def
	}
	return limit
}
