package main

import (
	"context"
	"errors"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
)

// SendMessage validates and stores a message. The stored record is not
// echoed back; clients observe it through their live queries.
func (s *Server) SendMessage(ctx context.Context, req *v1.SendMessageRequest) (*v1.SendMessageResponse, error) {
	if _, err := s.feed.SendMessage(ctx, req.GetAuthor(), req.GetBody(), req.GetEmail()); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.SendMessageResponse{}, nil
}

// ListRecentMessages returns the newest messages, oldest first.
func (s *Server) ListRecentMessages(ctx context.Context, req *v1.ListRecentMessagesRequest) (*v1.ListMessagesResponse, error) {
	msgs, err := s.feed.ListRecentMessages(ctx, req.GetLimit())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.ListMessagesResponse{Messages: messagesToProto(msgs)}, nil
}

func (s *Server) ListRecentMessagesWithUsers(ctx context.Context, req *v1.ListRecentMessagesWithUsersRequest) (*v1.ListMessagesWithUsersResponse, error) {
	items, err := s.feed.ListRecentMessagesWithUsers(ctx, req.GetLimit())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.ListMessagesWithUsersResponse{Items: joinedToProto(items)}, nil
}

func (s *Server) ListMessagesForUser(ctx context.Context, req *v1.ListMessagesForUserRequest) (*v1.ListMessagesResponse, error) {
	msgs, err := s.feed.ListMessagesForUser(ctx, req.GetUserId(), req.GetLimit())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.ListMessagesResponse{Messages: messagesToProto(msgs)}, nil
}

func (s *Server) CountAllMessages(ctx context.Context, _ *v1.CountAllMessagesRequest) (*v1.CountResponse, error) {
	n, err := s.feed.CountAllMessages(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.CountResponse{Count: n}, nil
}

func (s *Server) CountMessagesForUser(ctx context.Context, req *v1.CountMessagesForUserRequest) (*v1.CountResponse, error) {
	n, err := s.feed.CountMessagesForUser(ctx, req.GetUserId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.CountResponse{Count: n}, nil
}

// ResolveOrCreateUser looks the caller up by email, then name, creating them
// on a miss.
func (s *Server) ResolveOrCreateUser(ctx context.Context, req *v1.ResolveOrCreateUserRequest) (*v1.UserResponse, error) {
	u, err := s.dir.ResolveOrCreateUser(ctx, req.GetName(), req.GetEmail())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.UserResponse{User: userToProto(u)}, nil
}

// TouchActivity marks the user as seen. Unknown users are not an error.
func (s *Server) TouchActivity(ctx context.Context, req *v1.TouchActivityRequest) (*v1.TouchActivityResponse, error) {
	if err := s.dir.TouchActivity(ctx, req.GetUserId()); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.TouchActivityResponse{}, nil
}

// GetUser reports a missing user with Found=false rather than NotFound.
func (s *Server) GetUser(ctx context.Context, req *v1.GetUserRequest) (*v1.GetUserResponse, error) {
	u, err := s.dir.GetUser(ctx, req.GetUserId())
	if errors.Is(err, data.ErrNotFound) {
		return &v1.GetUserResponse{Found: false}, nil
	}
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.GetUserResponse{User: userToProto(u), Found: true}, nil
}

func (s *Server) ListUsersWithMessageCounts(ctx context.Context, _ *v1.ListUsersWithMessageCountsRequest) (*v1.ListUsersWithMessageCountsResponse, error) {
	items, err := s.dir.ListUsersWithMessageCounts(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.ListUsersWithMessageCountsResponse{Users: countsToProto(items)}, nil
}

func (s *Server) CountActiveUsers(ctx context.Context, _ *v1.CountActiveUsersRequest) (*v1.CountResponse, error) {
	n, err := s.dir.CountActiveUsers(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.CountResponse{Count: n}, nil
}

func (s *Server) ListRecentActiveUsers(ctx context.Context, req *v1.ListRecentActiveUsersRequest) (*v1.ListUsersResponse, error) {
	users, err := s.dir.ListRecentActiveUsers(ctx, req.GetLimit())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &v1.ListUsersResponse{Users: usersToProto(users)}, nil
}

// Watch streams snapshots of a live query until the client goes away. The
// first snapshot is sent immediately; later ones follow each change.
func (s *Server) Watch(req *v1.WatchRequest, stream v1.ChatService_WatchServer) error {
	q, err := s.resolveQuery(req)
	if err != nil {
		return toStatus(stream.Context(), err)
	}

	id, errc := s.hub.Register(q, stream)
	defer s.hub.Unregister(q.key, id)

	select {
	case <-stream.Context().Done():
		return nil
	case err := <-errc:
		return toStatus(stream.Context(), err)
	}
}
