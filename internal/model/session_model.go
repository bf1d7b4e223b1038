package model

import (
	"time"

	"github.com/google/uuid"
)

// Session rows are never soft-deleted: lifecycle is carried entirely by
// status. Deleting a Brand cascades here; deleting a User nulls user_id.
type Session struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionKey string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	BrandId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Brand      *Brand     `gorm:"foreignKey:BrandId;constraint:OnDelete:CASCADE"`
	UserId     *uuid.UUID `gorm:"type:uuid;index"`
	User       *User      `gorm:"foreignKey:UserId;constraint:OnDelete:SET NULL"`
	Status     string     `gorm:"type:varchar(20);not null;default:'active';index:idx_sessions_status_activity,priority:1"`

	StartedAt       time.Time `gorm:"not null"`
	LastActivity    time.Time `gorm:"not null;index:idx_sessions_status_activity,priority:2"`
	EndedAt         *time.Time
	DurationSeconds *int

	MessageCount          int `gorm:"default:0"`
	UserMessageCount      int `gorm:"default:0"`
	AssistantMessageCount int `gorm:"default:0"`

	LastInputTokens   int `gorm:"default:0"`
	LastOutputTokens  int `gorm:"default:0"`
	LastTokenUsage    int `gorm:"default:0"`
	TotalInputTokens  int `gorm:"default:0"`
	TotalOutputTokens int `gorm:"default:0"`
	TotalTokens       int `gorm:"default:0"`

	EmailSent   bool `gorm:"default:false"`
	EmailSentAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
