package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryInterceptor_RequestID(t *testing.T) {
	ic := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/chat.v1.ChatService/GetUser"}

	var got string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = RequestIDFromContext(ctx)
		return "ok", nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))
	if _, err := ic(ctx, nil, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "req-42" {
		t.Fatalf("expected caller request id, got %q", got)
	}

	if _, err := ic(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" || got == "req-42" {
		t.Fatalf("expected generated request id, got %q", got)
	}
}

func TestUnaryInterceptor_RecoversPanic(t *testing.T) {
	ic := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/chat.v1.ChatService/Boom"}

	_, err := ic(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
		panic("kaboom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestUnaryInterceptor_CountsByCode(t *testing.T) {
	ic := UnaryServerInterceptor()
	method := "/chat.v1.ChatService/SendMessage"
	info := &grpc.UnaryServerInfo{FullMethod: method}
	before := testutil.ToFloat64(metrics.GRPCRequestsTotal.WithLabelValues(method, codes.InvalidArgument.String()))

	_, err := ic(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "message cannot be empty")
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("handler error should pass through, got %v", err)
	}

	after := testutil.ToFloat64(metrics.GRPCRequestsTotal.WithLabelValues(method, codes.InvalidArgument.String()))
	if after != before+1 {
		t.Fatalf("expected counter to increase by one, got %v -> %v", before, after)
	}
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f fakeStream) Context() context.Context { return f.ctx }

func (f fakeStream) SetHeader(metadata.MD) error { return nil }

func TestStreamInterceptor_WrapsContext(t *testing.T) {
	ic := StreamServerInterceptor()
	info := &grpc.StreamServerInfo{FullMethod: "/chat.v1.ChatService/Watch", IsServerStream: true}

	var got string
	err := ic(nil, fakeStream{ctx: context.Background()}, info, func(srv interface{}, ss grpc.ServerStream) error {
		got = RequestIDFromContext(ss.Context())
		return errors.New("stream failed")
	})
	if err == nil {
		t.Fatalf("expected handler error to propagate")
	}
	if got == "" {
		t.Fatalf("stream context should carry a request id")
	}
}

func TestStreamInterceptor_RecoversPanic(t *testing.T) {
	ic := StreamServerInterceptor()
	info := &grpc.StreamServerInfo{FullMethod: "/chat.v1.ChatService/Watch"}

	err := ic(nil, fakeStream{ctx: context.Background()}, info, func(interface{}, grpc.ServerStream) error {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}
