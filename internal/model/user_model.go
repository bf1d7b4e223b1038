package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(50)"`
	BusinessName       string    `gorm:"type:varchar(255)"`
	Website            string    `gorm:"type:varchar(255)"`
	Location           string    `gorm:"type:varchar(255)"`
	IpAddress          string    `gorm:"type:varchar(45)"`
	City               string    `gorm:"type:varchar(100)"`
	Region             string    `gorm:"type:varchar(100)"`
	Country            string    `gorm:"type:varchar(100)"`
	TotalConversations int       `gorm:"default:0"`
	FirstSeen          time.Time `gorm:"autoCreateTime"`
	LastSeen           time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
