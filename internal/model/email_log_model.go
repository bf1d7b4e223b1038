package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmailLog struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Session         *Session       `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
	UserId          *uuid.UUID     `gorm:"type:uuid;index"`
	User            *User          `gorm:"foreignKey:UserId;constraint:OnDelete:SET NULL"`
	BrandId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Brand           *Brand         `gorm:"foreignKey:BrandId;constraint:OnDelete:CASCADE"`
	RecipientEmails datatypes.JSON `gorm:"type:jsonb"`
	Subject         string         `gorm:"type:varchar(500)"`
	HtmlContent     string         `gorm:"type:text"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	ErrorMessage    string         `gorm:"type:text"`
	AttemptCount    int            `gorm:"default:0"`
	SentAt          *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
