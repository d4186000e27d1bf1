package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/chat"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/config"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/live"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var (
	// Version information (set via ldflags during build)
	Version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chat-api",
	Short: "Real-time chat server",
	Long: `chat-api serves the chat service over gRPC and HTTP/WebSocket.

Configuration is read from defaults, an optional YAML file, environment
variables (MONGODB_URI, PORT, TLS_CERT, TLS_KEY, REQUIRE_TLS, STORE_DRIVER,
DATABASE_URL, BOLT_PATH, HTTP_PORT, LOG_LEVEL, LOG_JSON, ...) and finally the
flags below.`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().String("config", "", "path to a YAML config file")
	rootCmd.Flags().String("store", "", "store driver: mongo, postgres or bolt")
	rootCmd.Flags().String("port", "", "gRPC port")
	rootCmd.Flags().String("http-port", "", "HTTP port (empty string from config disables HTTP)")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().Bool("log-json", false, "emit JSON logs")
}

// loadConfig layers flags over the file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, os.Getenv)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Driver, _ = flags.GetString("store")
	}
	if flags.Changed("port") {
		cfg.GRPC.Port, _ = flags.GetString("port")
	}
	if flags.Changed("http-port") {
		cfg.HTTP.Port, _ = flags.GetString("http-port")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON, _ = flags.GetBool("log-json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:      logging.Level(cfg.Log.Level),
		JSONOutput: cfg.Log.JSON,
	})
	logger := logging.WithComponent("main")

	ctx := context.Background()

	backend, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		_ = backend.Close(context.Background())
	}()
	logger.Info().Str("driver", backend.Name).Msg("store ready")

	broker := live.NewBroker()
	dir := chat.NewDirectory(backend.Users, backend.Messages, chat.NewClock(nil), broker)
	feed := chat.NewFeed(dir)
	hub := NewQueryHub(broker, HubOptions{
		Refresh:   cfg.Live.RefreshInterval,
		PerSecond: cfg.Live.MaxRefreshPerSec,
	})
	srv := newServer(dir, feed, hub)

	if err := metrics.RegisterActiveUsers(func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := dir.CountActiveUsers(ctx)
		if err != nil {
			return 0
		}
		return float64(n)
	}); err != nil {
		return err
	}

	serverOpts, err := serverOptions(cfg)
	if err != nil {
		return err
	}
	grpcServer := grpc.NewServer(serverOpts...)
	registerService(grpcServer, srv)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)

	// Listen and serve
	listenAddr := fmt.Sprintf(":%s", cfg.GRPC.Port)
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errc := make(chan error, 2)
	go func() {
		logger.Info().Str("addr", listenAddr).Bool("tls", cfg.TLSEnabled()).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			errc <- fmt.Errorf("gRPC server exit: %w", err)
		}
	}()

	httpApp := newHTTPApp(srv, backend.Ping)
	if cfg.HTTP.Port != "" {
		httpAddr := fmt.Sprintf(":%s", cfg.HTTP.Port)
		go func() {
			logger.Info().Str("addr", httpAddr).Msg("HTTP server listening")
			if err := httpApp.Listen(httpAddr); err != nil {
				errc <- fmt.Errorf("HTTP server exit: %w", err)
			}
		}()
	}

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case runErr = <-errc:
		logger.Error().Err(runErr).Msg("server failed")
	}

	healthSrv.Shutdown()
	if err := httpApp.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn().Err(err).Msg("HTTP shutdown")
	}
	grpcServer.GracefulStop()
	return runErr
}
