// Package presence holds the activity thresholds shared by the user directory
// and the roster views, plus the labels clients render for a lastSeen value.
//
// All instants are milliseconds since the Unix epoch.
package presence

import (
	"fmt"
	"time"
)

const (
	// OnlineWindow is how recently a user must have been seen to count as online.
	OnlineWindow = 5 * time.Minute
	// RecentWindow bounds the "recently active" roster.
	RecentWindow = 30 * time.Minute
)

// Cutoff returns the earliest lastSeen that still falls inside window.
func Cutoff(now int64, window time.Duration) int64 {
	return now - window.Milliseconds()
}

// IsOnline reports whether lastSeen is within OnlineWindow of now.
func IsOnline(lastSeen, now int64) bool {
	return lastSeen >= Cutoff(now, OnlineWindow)
}

// RosterLabel is the compact label shown next to a name in the active users
// list: "online" under a minute, "Nm" under an hour, "offline" after that.
func RosterLabel(lastSeen, now int64) string {
	minutes := elapsed(lastSeen, now) / time.Minute
	switch {
	case minutes < 1:
		return "online"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	default:
		return "offline"
	}
}

// AgoLabel is the relative time shown in the user stats table.
func AgoLabel(lastSeen, now int64) string {
	d := elapsed(lastSeen, now)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", d/time.Minute)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", d/time.Hour)
	default:
		return fmt.Sprintf("%dd ago", d/(24*time.Hour))
	}
}

// elapsed clamps timestamps from the future to zero.
func elapsed(lastSeen, now int64) time.Duration {
	if lastSeen >= now {
		return 0
	}
	return time.Duration(now-lastSeen) * time.Millisecond
}
