package model

import (
	"time"

	"github.com/google/uuid"
)

type UserBrandInteraction struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_brand,priority:1"`
	User              *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	BrandId           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_brand,priority:2"`
	Brand             *Brand    `gorm:"foreignKey:BrandId;constraint:OnDelete:CASCADE"`
	TotalSessions     int       `gorm:"default:0"`
	TotalMessages     int       `gorm:"default:0"`
	TotalEmailsSent   int       `gorm:"default:0"`
	TotalInputTokens  int       `gorm:"default:0"`
	TotalOutputTokens int       `gorm:"default:0"`
	TotalTokens       int       `gorm:"default:0"`
	FirstInteraction  time.Time `gorm:"autoCreateTime"`
	LastInteraction   time.Time `gorm:"autoUpdateTime"`
}

func (UserBrandInteraction) TableName() string {
	return "user_brand_interactions"
}

type AnalyticsSummary struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandId               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_brand_date,priority:1"`
	Brand                 *Brand    `gorm:"foreignKey:BrandId;constraint:OnDelete:CASCADE"`
	Date                  time.Time `gorm:"type:date;not null;uniqueIndex:idx_brand_date,priority:2"`
	TotalSessions         int       `gorm:"default:0"`
	TotalMessages         int       `gorm:"default:0"`
	TotalUsers            int       `gorm:"default:0"`
	NewUsers              int       `gorm:"default:0"`
	EmailsSent            int       `gorm:"default:0"`
	AvgSessionDuration    float64   `gorm:"default:0"`
	AvgMessagesPerSession float64   `gorm:"default:0"`
	TotalInputTokens      int       `gorm:"default:0"`
	TotalOutputTokens     int       `gorm:"default:0"`
	TotalTokens           int       `gorm:"default:0"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (AnalyticsSummary) TableName() string {
	return "analytics_summary"
}
