package contract

import (
	"context"
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmailLogRepository interface {
	Create(ctx context.Context, log *entity.EmailLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MarkSent/MarkFailed move pending rows forward and bump attempt_count.
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
}
