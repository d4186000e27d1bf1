// Package v1 holds the chat.v1 protobuf contract (chat.proto) and its
// generated Go bindings.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative chat.proto
package v1

// Watch query names.
const (
	QueryRecentMessages          = "recent_messages"
	QueryRecentMessagesWithUsers = "recent_messages_with_users"
	QueryMessagesForUser         = "messages_for_user"
	QueryMessageCount            = "message_count"
	QueryUserMessageCount        = "user_message_count"
	QueryUsersWithCounts         = "users_with_counts"
	QueryActiveUserCount         = "active_user_count"
	QueryRecentActiveUsers       = "recent_active_users"
)
