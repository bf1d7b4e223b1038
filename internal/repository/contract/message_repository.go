package contract

import (
	"context"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// NextOrder returns MAX(message_order)+1 for the session. Call it inside
	// the same unit of work as Create; the unique (session_id, message_order)
	// index rejects the loser of a race.
	NextOrder(ctx context.Context, sessionId uuid.UUID) (int, error)
}
