package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusEnded   SessionStatus = "ended"
	SessionStatusTimeout SessionStatus = "timeout"
)

// Terminal reports whether the status admits no further transitions.
// Only "active" sessions may be touched or closed.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusEnded || s == SessionStatusTimeout
}

// Session is one bounded conversation between a visitor and a brand.
// user_id stays nil until the visitor shares contact details mid-conversation.
type Session struct {
	Id         uuid.UUID
	SessionKey string
	BrandId    uuid.UUID
	UserId     *uuid.UUID
	Status     SessionStatus

	StartedAt       time.Time
	LastActivity    time.Time
	EndedAt         *time.Time
	DurationSeconds *int

	MessageCount          int
	UserMessageCount      int
	AssistantMessageCount int

	LastInputTokens   int
	LastOutputTokens  int
	LastTokenUsage    int
	TotalInputTokens  int
	TotalOutputTokens int
	TotalTokens       int

	EmailSent   bool
	EmailSentAt *time.Time
}

// StaleAt reports whether the session should be reaped at the given instant.
// A session with no traffic at all still ages out: LastActivity is seeded
// from StartedAt on creation.
func (s *Session) StaleAt(now time.Time, idleTimeout time.Duration) bool {
	if s.Status != SessionStatusActive {
		return false
	}
	return s.LastActivity.Before(now.Add(-idleTimeout))
}
