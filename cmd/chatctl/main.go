package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/client"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version information (set via ldflags during build)
	Version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chatctl",
	Short: "Command-line client for the chat service",
	Long: `chatctl talks to a chat-api server over gRPC.

Your name, email and user id are remembered in a prefs file so that later
commands post as the same user.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	addr := os.Getenv("CHAT_ADDR")
	if addr == "" {
		addr = "localhost:50051"
	}

	rootCmd.PersistentFlags().String("addr", addr, "chat-api gRPC address (env CHAT_ADDR)")
	rootCmd.PersistentFlags().String("prefs", "", "prefs file (default: <user config dir>/chatctl/prefs.yaml)")
	rootCmd.PersistentFlags().Bool("tls", false, "connect with TLS")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json-logs", false, "force JSON logs (default when stderr is not a terminal)")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(composeCmd)
}

// setupLogging writes logs to stderr, as console output on a terminal and
// JSON otherwise.
func setupLogging(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	logging.Init(logging.Config{
		Level:      logging.Level(level),
		JSONOutput: jsonLogs || !term.IsTerminal(int(os.Stderr.Fd())),
		Output:     os.Stderr,
	})
	return nil
}

func dial(cmd *cobra.Command) (*client.Client, error) {
	addr, _ := cmd.Flags().GetString("addr")
	useTLS, _ := cmd.Flags().GetBool("tls")
	return client.Dial(addr, client.Options{TLS: useTLS})
}

func prefsPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("prefs")
	if path != "" {
		return path, nil
	}
	return client.DefaultPrefsPath()
}

func loadPrefs(cmd *cobra.Command) (*client.Prefs, string, error) {
	path, err := prefsPath(cmd)
	if err != nil {
		return nil, "", err
	}
	p, err := client.LoadPrefs(path)
	if err != nil {
		return nil, "", err
	}
	return p, path, nil
}
