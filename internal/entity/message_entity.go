package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleAssistant || r == MessageRoleSystem
}

// Message is an append-only transcript entry. MessageOrder is strictly
// increasing per session; a unique (session_id, message_order) index enforces
// it under concurrent writers.
type Message struct {
	Id               uuid.UUID
	SessionId        uuid.UUID
	Role             MessageRole
	Content          string
	FormattedContent string
	ContentType      string
	FileName         string
	FileSize         *int64
	InputTokens      int
	OutputTokens     int
	TotalTokens      int
	MessageOrder     int
	CreatedAt        time.Time
}
