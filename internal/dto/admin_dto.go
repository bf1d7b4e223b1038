package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type DashboardStatsResponse struct {
	TotalSessions      int64   `json:"total_sessions"`
	ActiveSessions     int64   `json:"active_sessions"`
	StaleSessions      int64   `json:"stale_sessions"`
	TotalUsers         int64   `json:"total_users"`
	TotalMessages      int64   `json:"total_messages"`
	TotalEmailsSent    int64   `json:"total_emails_sent"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	TotalInputTokens   int64   `json:"total_input_tokens"`
	TotalOutputTokens  int64   `json:"total_output_tokens"`
	TotalTokens        int64   `json:"total_tokens"`
}

type EmailLogResponse struct {
	Id           uuid.UUID  `json:"id"`
	SessionKey   string     `json:"session_key,omitempty"`
	Recipients   []string   `json:"recipients"`
	Subject      string     `json:"subject"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	AttemptCount int        `json:"attempt_count"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CleanupSessionsRequest struct {
	Days int `json:"days" validate:"required,min=1"`
}

type CleanupSessionsResponse struct {
	Deleted int64 `json:"deleted"`
}

type DailySummaryRequest struct {
	BrandId uuid.UUID `json:"brand_id" validate:"required"`
	Date    string    `json:"date"` // YYYY-MM-DD, today when empty
}

type ConversationExportMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ConversationExport struct {
	SessionKey      string                      `json:"session_key"`
	BrandKey        string                      `json:"brand_key"`
	Status          string                      `json:"status"`
	UserName        string                      `json:"user_name,omitempty"`
	UserEmail       string                      `json:"user_email,omitempty"`
	StartedAt       time.Time                   `json:"started_at"`
	EndedAt         *time.Time                  `json:"ended_at,omitempty"`
	DurationSeconds *int                        `json:"duration_seconds,omitempty"`
	MessageCount    int                         `json:"message_count"`
	TotalTokens     int                         `json:"total_tokens"`
	Messages        []ConversationExportMessage `json:"messages"`
}
