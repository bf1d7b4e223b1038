package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a tenant of the chatbot platform. Brands are created by operators,
// rarely mutated and never hard-deleted through the API (soft-deactivated).
type Brand struct {
	Id            uuid.UUID
	BrandKey      string
	DisplayName   string
	Email         string
	VectorStoreId string
	Instructions  string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// BrandRecipient is a mailing-list entry for conversation summary emails.
type BrandRecipient struct {
	Id        uuid.UUID
	BrandId   uuid.UUID
	Email     string
	IsActive  bool
	CreatedAt time.Time
}
