package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/client"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func nowMillis() int64 { return time.Now().UnixMilli() }

var sendCmd = &cobra.Command{
	Use:   "send MESSAGE...",
	Short: "Send a message",
	Long: `Send a message as the remembered identity. --name and --email update
the identity and are remembered for later commands.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, path, err := loadPrefs(cmd)
		if err != nil {
			return err
		}
		c, err := dial(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		comp := client.NewComposer(c, prefs, path)
		defer comp.Close()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if name != "" || email != "" {
			if err := comp.SetIdentity(name, email); err != nil {
				return err
			}
			comp.Flush()
		}

		if err := comp.Send(cmd.Context(), strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Sent.")
		return nil
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show recent messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt64("limit")
		withUsers, _ := cmd.Flags().GetBool("with-users")
		userID, _ := cmd.Flags().GetString("user")
		follow, _ := cmd.Flags().GetBool("follow")

		c, err := dial(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		req := &v1.WatchRequest{Query: v1.QueryRecentMessages, Limit: limit}
		switch {
		case userID != "":
			req.Query = v1.QueryMessagesForUser
			req.UserId = userID
		case withUsers:
			req.Query = v1.QueryRecentMessagesWithUsers
		}

		out := cmd.OutOrStdout()
		render := func(resp *v1.WatchResponse) {
			if req.Query == v1.QueryRecentMessagesWithUsers {
				renderJoined(out, resp.GetMessagesWithUsers(), nowMillis())
				return
			}
			renderMessages(out, resp.GetMessages())
		}

		if follow {
			return followQuery(cmd.Context(), c, req, out, render)
		}

		resp, err := fetchFeed(cmd.Context(), c, req)
		if err != nil {
			return err
		}
		render(resp)
		return nil
	},
}

// fetchFeed runs the one-shot form of a feed query.
func fetchFeed(ctx context.Context, c v1.ChatServiceClient, req *v1.WatchRequest) (*v1.WatchResponse, error) {
	resp := &v1.WatchResponse{Query: req.Query}
	switch req.Query {
	case v1.QueryMessagesForUser:
		r, err := c.ListMessagesForUser(ctx, &v1.ListMessagesForUserRequest{UserId: req.UserId, Limit: req.Limit})
		if err != nil {
			return nil, describe(err)
		}
		resp.Messages = r.GetMessages()
	case v1.QueryRecentMessagesWithUsers:
		r, err := c.ListRecentMessagesWithUsers(ctx, &v1.ListRecentMessagesWithUsersRequest{Limit: req.Limit})
		if err != nil {
			return nil, describe(err)
		}
		resp.MessagesWithUsers = r.GetItems()
	default:
		r, err := c.ListRecentMessages(ctx, &v1.ListRecentMessagesRequest{Limit: req.Limit})
		if err != nil {
			return nil, describe(err)
		}
		resp.Messages = r.GetMessages()
	}
	return resp, nil
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show recently active users",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt64("limit")
		follow, _ := cmd.Flags().GetBool("follow")

		c, err := dial(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		out := cmd.OutOrStdout()
		if follow {
			req := &v1.WatchRequest{Query: v1.QueryRecentActiveUsers, Limit: limit}
			return followQuery(cmd.Context(), c, req, out, func(resp *v1.WatchResponse) {
				renderRoster(out, resp.GetUsers(), nowMillis())
			})
		}

		resp, err := c.ListRecentActiveUsers(cmd.Context(), &v1.ListRecentActiveUsersRequest{Limit: limit})
		if err != nil {
			return describe(err)
		}
		renderRoster(out, resp.GetUsers(), nowMillis())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show message counts per user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		ctx := cmd.Context()

		c, err := dial(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		out := cmd.OutOrStdout()
		if userID != "" {
			return userStats(ctx, c, userID, out)
		}

		users, err := c.ListUsersWithMessageCounts(ctx, &v1.ListUsersWithMessageCountsRequest{})
		if err != nil {
			return describe(err)
		}
		total, err := c.CountAllMessages(ctx, &v1.CountAllMessagesRequest{})
		if err != nil {
			return describe(err)
		}
		active, err := c.CountActiveUsers(ctx, &v1.CountActiveUsersRequest{})
		if err != nil {
			return describe(err)
		}

		renderStats(out, users.GetUsers(), total.GetCount(), nowMillis())
		fmt.Fprintf(out, "%d online now\n", active.GetCount())
		return nil
	},
}

func userStats(ctx context.Context, c v1.ChatServiceClient, userID string, out io.Writer) error {
	user, err := c.GetUser(ctx, &v1.GetUserRequest{UserId: userID})
	if err != nil {
		return describe(err)
	}
	if !user.GetFound() {
		return fmt.Errorf("user %s not found", userID)
	}
	n, err := c.CountMessagesForUser(ctx, &v1.CountMessagesForUserRequest{UserId: userID})
	if err != nil {
		return describe(err)
	}
	msgs, err := c.ListMessagesForUser(ctx, &v1.ListMessagesForUserRequest{UserId: userID, Limit: 10})
	if err != nil {
		return describe(err)
	}

	renderUser(out, user.GetUser(), nowMillis())
	fmt.Fprintf(out, "  messages:  %d\n\nRecent messages:\n", n.GetCount())
	renderMessages(out, msgs.GetMessages())
	return nil
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the remembered identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, path, err := loadPrefs(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if prefs.Name == "" && prefs.UserID == "" {
			fmt.Fprintf(out, "No identity saved in %s. Use 'chatctl send --name NAME ...' first.\n", path)
			return nil
		}
		if prefs.UserID == "" {
			fmt.Fprintf(out, "%s (not registered yet)\n", prefs.Name)
			return nil
		}

		c, err := dial(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.GetUser(cmd.Context(), &v1.GetUserRequest{UserId: prefs.UserID})
		if err != nil {
			return describe(err)
		}
		if !resp.GetFound() {
			fmt.Fprintf(out, "%s (user %s no longer exists)\n", prefs.Name, prefs.UserID)
			return nil
		}
		renderUser(out, resp.GetUser(), nowMillis())
		return nil
	},
}

func init() {
	sendCmd.Flags().String("name", "", "your display name")
	sendCmd.Flags().String("email", "", "your email (optional)")

	feedCmd.Flags().Int64("limit", 0, "number of messages (server default when 0)")
	feedCmd.Flags().Bool("with-users", false, "include author presence")
	feedCmd.Flags().String("user", "", "only messages from this user id")
	feedCmd.Flags().BoolP("follow", "f", false, "keep printing updates")

	rosterCmd.Flags().Int64("limit", 0, "number of users (server default when 0)")
	rosterCmd.Flags().BoolP("follow", "f", false, "keep printing updates")

	statsCmd.Flags().String("user", "", "show a single user")
}

// followQuery prints every snapshot of req until ctx is cancelled.
func followQuery(ctx context.Context, c v1.ChatServiceClient, req *v1.WatchRequest, out io.Writer, render func(*v1.WatchResponse)) error {
	stream, err := c.Watch(ctx, req)
	if err != nil {
		return describe(err)
	}
	for {
		resp, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return describe(err)
		}
		fmt.Fprintf(out, "--- %s ---\n", time.Now().Format("15:04:05"))
		render(resp)
	}
}

// describe strips the gRPC framing from err for display.
func describe(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.Unavailable {
		return fmt.Errorf("chat server unavailable: %s", st.Message())
	}
	return errors.New(st.Message())
}
