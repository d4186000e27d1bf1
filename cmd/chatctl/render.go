package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/presence"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
)

func formatTime(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

func renderMessages(w io.Writer, msgs []*v1.Message) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages yet.")
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(w, "[%s] %s: %s\n", formatTime(m.GetTimestamp()), m.GetAuthor(), m.GetBody())
	}
}

// renderJoined prints messages with the author's live presence. Authors
// whose record is gone are shown without it.
func renderJoined(w io.Writer, items []*v1.MessageWithUser, now int64) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No messages yet.")
		return
	}
	for _, it := range items {
		m := it.GetMessage()
		name := it.GetUser().GetName()
		status := ""
		if !it.GetFallback() {
			status = " (" + presence.RosterLabel(it.GetUser().GetLastSeen(), now) + ")"
		}
		fmt.Fprintf(w, "[%s] %s%s: %s\n", formatTime(m.GetTimestamp()), name, status, m.GetBody())
	}
}

func renderRoster(w io.Writer, users []*v1.User, now int64) {
	online := 0
	for _, u := range users {
		if presence.IsOnline(u.GetLastSeen(), now) {
			online++
		}
	}
	fmt.Fprintf(w, "Active users (%d online)\n", online)
	if len(users) == 0 {
		fmt.Fprintln(w, "  No recent activity.")
		return
	}
	for _, u := range users {
		dot := "○"
		if presence.IsOnline(u.GetLastSeen(), now) {
			dot = "●"
		}
		fmt.Fprintf(w, "  %s %-20s %s\n", dot, u.GetName(), presence.RosterLabel(u.GetLastSeen(), now))
	}
}

func renderStats(w io.Writer, items []*v1.UserWithCount, total int64, now int64) {
	fmt.Fprintf(w, "%d users, %d messages\n", len(items), total)
	for _, it := range items {
		u := it.GetUser()
		fmt.Fprintf(w, "  %-20s %6d  %s\n", u.GetName(), it.GetMessageCount(), presence.AgoLabel(u.GetLastSeen(), now))
	}
}

func renderUser(w io.Writer, u *v1.User, now int64) {
	var b strings.Builder
	b.WriteString(u.GetName())
	if u.GetEmail() != "" {
		b.WriteString(" <" + u.GetEmail() + ">")
	}
	fmt.Fprintf(w, "%s\n  id:        %s\n  last seen: %s\n", b.String(), u.GetId(), presence.AgoLabel(u.GetLastSeen(), now))
}
