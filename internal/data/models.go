package data

// User is a chat participant resolved from a display name and optional email.
// LastSeen is milliseconds since the Unix epoch.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	LastSeen int64  `json:"lastSeen"`
}

// Message is a single post in the feed. Author is the sender's display name at
// posting time and is never resynced with the User record.
type Message struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// Room is declared for future multi-room support; nothing reads or writes it yet.
type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPrivate   bool   `json:"isPrivate"`
}

// MessageWithUser joins a message with its author record. Fallback is set when
// the user could not be loaded and User was synthesized from the message.
type MessageWithUser struct {
	Message  *Message
	User     *User
	Fallback bool
}

// UserWithCount is a user plus the number of messages they have posted.
type UserWithCount struct {
	User         *User
	MessageCount int64
}
