package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBrandRequest struct {
	BrandKey      string   `json:"brand_key" validate:"required,min=2,max=100"`
	DisplayName   string   `json:"display_name" validate:"required"`
	Email         string   `json:"email" validate:"omitempty,email"`
	VectorStoreId string   `json:"vector_store_id"`
	Instructions  string   `json:"instructions"`
	Recipients    []string `json:"recipients" validate:"dive,email"`
}

type UpdateBrandRequest struct {
	Id            uuid.UUID `json:"-"`
	DisplayName   *string   `json:"display_name"`
	Email         *string   `json:"email" validate:"omitempty,email"`
	VectorStoreId *string   `json:"vector_store_id"`
	Instructions  *string   `json:"instructions"`
	IsActive      *bool     `json:"is_active"`
}

type BrandResponse struct {
	Id            uuid.UUID `json:"id"`
	BrandKey      string    `json:"brand_key"`
	DisplayName   string    `json:"display_name"`
	Email         string    `json:"email"`
	VectorStoreId string    `json:"vector_store_id"`
	Instructions  string    `json:"instructions"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type AddRecipientRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateRecipientRequest struct {
	IsActive bool `json:"is_active"`
}

type RecipientResponse struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}
