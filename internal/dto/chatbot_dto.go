package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	BrandKey   string `json:"brand_key" validate:"required"`
	SessionKey string `json:"session_key"` // generated when empty
}

type StartSessionResponse struct {
	SessionKey string    `json:"session_key"`
	BrandKey   string    `json:"brand_key"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
}

type RecordMessageRequest struct {
	Role             string `json:"role" validate:"required,oneof=user assistant system"`
	Content          string `json:"content" validate:"required"`
	FormattedContent string `json:"formatted_content"`
	ContentType      string `json:"content_type"`
	FileName         string `json:"file_name"`
	FileSize         *int64 `json:"file_size"`
	InputTokens      int    `json:"input_tokens" validate:"gte=0"`
	OutputTokens     int    `json:"output_tokens" validate:"gte=0"`
}

type RecordMessageResponse struct {
	MessageOrder int       `json:"message_order"`
	MessageCount int       `json:"message_count"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type CaptureContactRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name"`
	Website      string `json:"website"`
	Location     string `json:"location"`
	IpAddress    string `json:"ip_address"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
}

type EndSessionRequest struct {
	// SendEmail requests a conversation summary mail to the brand recipients.
	SendEmail bool `json:"send_email"`
}

type SessionResponse struct {
	SessionKey      string     `json:"session_key"`
	BrandKey        string     `json:"brand_key"`
	UserId          *uuid.UUID `json:"user_id,omitempty"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	LastActivity    time.Time  `json:"last_activity"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
	MessageCount    int        `json:"message_count"`
	TotalTokens     int        `json:"total_tokens"`
	EmailSent       bool       `json:"email_sent"`
}

type MessageResponse struct {
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	ContentType  string    `json:"content_type"`
	MessageOrder int       `json:"message_order"`
	TotalTokens  int       `json:"total_tokens"`
	CreatedAt    time.Time `json:"created_at"`
}

type SessionDetailResponse struct {
	Session  SessionResponse   `json:"session"`
	Messages []MessageResponse `json:"messages"`
}
