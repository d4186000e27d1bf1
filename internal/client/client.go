// Package client is the Go-side counterpart of the chat web UI: a gRPC
// connection helper, locally persisted identity preferences, and the
// composer that resolves the user, keeps their presence fresh and sends
// messages.
package client

import (
	"crypto/tls"
	"fmt"

	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Client owns a connection to the chat service.
type Client struct {
	v1.ChatServiceClient
	conn *grpc.ClientConn
}

// Options configure Dial.
type Options struct {
	// TLS dials with system roots instead of plaintext.
	TLS bool
	// ServerName overrides the name checked against the server certificate.
	ServerName string
}

// Dial connects to the chat service at addr. The connection is established
// lazily on the first call.
func Dial(addr string, opts Options, extra ...grpc.DialOption) (*Client, error) {
	creds := insecure.NewCredentials()
	if opts.TLS {
		creds = credentials.NewTLS(&tls.Config{ServerName: opts.ServerName, MinVersion: tls.VersionTLS12})
	}

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, extra...)
	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{ChatServiceClient: v1.NewChatServiceClient(conn), conn: conn}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
