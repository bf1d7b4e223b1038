package contract

import (
	"context"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	// Delete removes the brand row; sessions, email logs, recipients and
	// interaction rollups go with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brand, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brand, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type BrandRecipientRepository interface {
	Create(ctx context.Context, recipient *entity.BrandRecipient) error
	Update(ctx context.Context, recipient *entity.BrandRecipient) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BrandRecipient, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BrandRecipient, error)
}
