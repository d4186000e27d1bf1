package main

import (
	"context"
	"errors"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/middleware"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the chat service on top of the directory and the feed.
// Live queries are fanned out through hub.
type Server struct {
	v1.UnimplementedChatServiceServer

	dir  *chat.Directory
	feed *chat.Feed
	hub  *QueryHub
}

// newServer returns a ready-to-use Server.
func newServer(dir *chat.Directory, feed *chat.Feed, hub *QueryHub) *Server {
	return &Server{dir: dir, feed: feed, hub: hub}
}

// registerService registers the ChatService on the given gRPC server.
func registerService(s *grpc.Server, srv *Server) {
	v1.RegisterChatServiceServer(s, srv)
}

// toStatus maps service errors to gRPC statuses. Validation messages are
// returned verbatim; store failures are logged and hidden.
func toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *chat.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Message)
	case errors.Is(err, data.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		logger := logging.WithComponent("api")
		logger.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(ctx)).
			Msg("request failed")
		return status.Error(codes.Internal, "internal error")
	}
}

func userToProto(u *data.User) *v1.User {
	if u == nil {
		return nil
	}
	return &v1.User{Id: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar, LastSeen: u.LastSeen}
}

func messageToProto(m *data.Message) *v1.Message {
	return &v1.Message{Id: m.ID, UserId: m.UserID, Author: m.Author, Body: m.Body, Timestamp: m.Timestamp}
}

func messagesToProto(msgs []*data.Message) []*v1.Message {
	out := make([]*v1.Message, len(msgs))
	for i, m := range msgs {
		out[i] = messageToProto(m)
	}
	return out
}

func joinedToProto(items []data.MessageWithUser) []*v1.MessageWithUser {
	out := make([]*v1.MessageWithUser, len(items))
	for i, it := range items {
		out[i] = &v1.MessageWithUser{Message: messageToProto(it.Message), User: userToProto(it.User), Fallback: it.Fallback}
	}
	return out
}

func usersToProto(users []*data.User) []*v1.User {
	out := make([]*v1.User, len(users))
	for i, u := range users {
		out[i] = userToProto(u)
	}
	return out
}

func countsToProto(items []data.UserWithCount) []*v1.UserWithCount {
	out := make([]*v1.UserWithCount, len(items))
	for i, it := range items {
		out[i] = &v1.UserWithCount{User: userToProto(it.User), MessageCount: it.MessageCount}
	}
	return out
}
