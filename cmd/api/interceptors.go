package main

import (
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/config"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// serverOptions assembles TLS credentials (when configured) and the
// request id, logging, metrics and recovery interceptors.
func serverOptions(cfg *config.Config) ([]grpc.ServerOption, error) {
	var opts []grpc.ServerOption

	// If TLS certs are configured, create server credentials and require TLS
	if cfg.TLSEnabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.GRPC.TLSCert, cfg.GRPC.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS certs: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	} else if cfg.GRPC.RequireTLS {
		return nil, fmt.Errorf("REQUIRE_TLS is true but TLS_CERT/TLS_KEY are not configured")
	}

	opts = append(opts,
		grpc.ChainUnaryInterceptor(middleware.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(middleware.StreamServerInterceptor()),
	)
	return opts, nil
}
