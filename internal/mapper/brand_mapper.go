package mapper

import (
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/model"
)

type BrandMapper struct{}

func NewBrandMapper() *BrandMapper {
	return &BrandMapper{}
}

func (m *BrandMapper) BrandToEntity(b *model.Brand) *entity.Brand {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.Brand{
		Id:            b.Id,
		BrandKey:      b.BrandKey,
		DisplayName:   b.DisplayName,
		Email:         b.Email,
		VectorStoreId: b.VectorStoreId,
		Instructions:  b.Instructions,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *BrandMapper) BrandToModel(b *entity.Brand) *model.Brand {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.Brand{
		Id:            b.Id,
		BrandKey:      b.BrandKey,
		DisplayName:   b.DisplayName,
		Email:         b.Email,
		VectorStoreId: b.VectorStoreId,
		Instructions:  b.Instructions,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *BrandMapper) RecipientToEntity(r *model.BrandRecipient) *entity.BrandRecipient {
	if r == nil {
		return nil
	}
	return &entity.BrandRecipient{
		Id:        r.Id,
		BrandId:   r.BrandId,
		Email:     r.Email,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

func (m *BrandMapper) RecipientToModel(r *entity.BrandRecipient) *model.BrandRecipient {
	if r == nil {
		return nil
	}
	return &model.BrandRecipient{
		Id:        r.Id,
		BrandId:   r.BrandId,
		Email:     r.Email,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}
