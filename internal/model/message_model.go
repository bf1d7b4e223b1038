package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_messages_session_order,priority:1"`
	Session          *Session  `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
	Role             string    `gorm:"type:varchar(20);not null"`
	Content          string    `gorm:"type:text;not null"`
	FormattedContent string    `gorm:"type:text"`
	ContentType      string    `gorm:"type:varchar(50);default:'text'"`
	FileName         string    `gorm:"type:varchar(255)"`
	FileSize         *int64
	InputTokens      int       `gorm:"default:0"`
	OutputTokens     int       `gorm:"default:0"`
	TotalTokens      int       `gorm:"default:0"`
	MessageOrder     int       `gorm:"not null;uniqueIndex:idx_messages_session_order,priority:2"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
