package contract

import (
	"context"
	"time"

	"brand-chatbot-be/internal/entity"

	"github.com/google/uuid"
)

// InteractionDelta carries the increments folded into a (user, brand) rollup.
type InteractionDelta struct {
	Sessions     int
	Messages     int
	EmailsSent   int
	InputTokens  int
	OutputTokens int
}

type AnalyticsRepository interface {
	// IncrementInteraction upserts the (user, brand) rollup in one statement
	// (INSERT ... ON CONFLICT DO UPDATE with additive assignments).
	IncrementInteraction(ctx context.Context, userId, brandId uuid.UUID, delta InteractionDelta) error

	// UpsertDailySummary recomputes the (brand, date) row from session
	// aggregates and upserts it.
	UpsertDailySummary(ctx context.Context, brandId uuid.UUID, date time.Time) error

	GetInteraction(ctx context.Context, userId, brandId uuid.UUID) (*entity.UserBrandInteraction, error)
	GetDailySummaries(ctx context.Context, brandId uuid.UUID, from, to time.Time) ([]*entity.AnalyticsSummary, error)

	// GetDashboardStats aggregates across sessions; brandId nil means global.
	GetDashboardStats(ctx context.Context, brandId *uuid.UUID) (*entity.DashboardStats, error)
}
