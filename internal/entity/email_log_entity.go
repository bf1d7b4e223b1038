package entity

import (
	"time"

	"github.com/google/uuid"
)

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// EmailLog records one conversation-summary notification attempt.
// Retry policy lives with the mail sender; this record only tracks
// attempt_count and the last error.
type EmailLog struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	UserId          *uuid.UUID
	BrandId         uuid.UUID
	RecipientEmails []string
	Subject         string
	HtmlContent     string
	Status          EmailStatus
	ErrorMessage    string
	AttemptCount    int
	SentAt          *time.Time
	CreatedAt       time.Time
}
