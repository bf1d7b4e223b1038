package model

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandKey      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName   string    `gorm:"type:varchar(255);not null;column:brand_display_name"`
	Email         string    `gorm:"type:varchar(255);column:brand_email"`
	VectorStoreId string    `gorm:"type:varchar(255)"`
	Instructions  string    `gorm:"type:text"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brands"
}

type BrandRecipient struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Brand     *Brand    `gorm:"foreignKey:BrandId;constraint:OnDelete:CASCADE"`
	Email     string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BrandRecipient) TableName() string {
	return "brand_recipients"
}
