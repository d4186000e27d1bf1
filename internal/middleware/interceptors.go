// Package middleware holds the gRPC interceptors shared by every chat service
// method: request ids, access logging, Prometheus metrics and panic recovery.
package middleware

import (
	"context"
	"runtime/debug"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the metadata key carrying a caller-supplied request id.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext returns the id attached by the interceptors, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID reuses the caller's x-request-id or generates one.
func withRequestID(ctx context.Context) (context.Context, string) {
	id := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDHeader); len(v) > 0 {
			id = v[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, id), id
}

// UnaryServerInterceptor tags each call with a request id, echoed in the
// response header. It recovers panics as codes.Internal and records the call
// in the access log and metrics.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		ctx, id := withRequestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))
		timer := metrics.NewTimer()

		defer func() {
			if r := recover(); r != nil {
				logger := logging.WithRequestID(id)
				logger.Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Str("method", info.FullMethod).
					Msg("handler panicked")
				err = status.Errorf(codes.Internal, "internal error")
			}
			observe(id, info.FullMethod, timer, err)
		}()

		return handler(ctx, req)
	}
}

// StreamServerInterceptor is the stream equivalent of UnaryServerInterceptor.
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		ctx, id := withRequestID(ss.Context())
		_ = ss.SetHeader(metadata.Pairs(RequestIDHeader, id))
		timer := metrics.NewTimer()

		defer func() {
			if r := recover(); r != nil {
				logger := logging.WithRequestID(id)
				logger.Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Str("method", info.FullMethod).
					Msg("stream handler panicked")
				err = status.Errorf(codes.Internal, "internal error")
			}
			observe(id, info.FullMethod, timer, err)
		}()

		return handler(srv, WrapServerStream(ss, ctx))
	}
}

func observe(id, method string, timer *metrics.Timer, err error) {
	code := status.Code(err)
	metrics.GRPCRequestsTotal.WithLabelValues(method, code.String()).Inc()
	timer.ObserveDurationVec(metrics.GRPCRequestDuration, method)

	logger := logging.WithRequestID(id)
	ev := logger.Info()
	switch code {
	case codes.OK, codes.Canceled:
	case codes.InvalidArgument, codes.NotFound:
		ev = logger.Warn().Err(err)
	default:
		ev = logger.Error().Err(err)
	}
	ev.Str("method", method).
		Str("code", code.String()).
		Dur("duration", timer.Duration()).
		Msg("grpc request")
}

// WrapServerStream overrides the context of ss.
func WrapServerStream(ss grpc.ServerStream, ctx context.Context) grpc.ServerStream {
	return wrappedServerStream{ServerStream: ss, ctx: ctx}
}

type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w wrappedServerStream) Context() context.Context { return w.ctx }
