package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserBrandInteraction is an incrementally-maintained rollup keyed by
// (user, brand).
type UserBrandInteraction struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	BrandId           uuid.UUID
	TotalSessions     int
	TotalMessages     int
	TotalEmailsSent   int
	TotalInputTokens  int
	TotalOutputTokens int
	TotalTokens       int
	FirstInteraction  time.Time
	LastInteraction   time.Time
}

// AnalyticsSummary is the per-(brand, date) daily rollup.
type AnalyticsSummary struct {
	Id                    uuid.UUID
	BrandId               uuid.UUID
	Date                  time.Time
	TotalSessions         int
	TotalMessages         int
	TotalUsers            int
	NewUsers              int
	EmailsSent            int
	AvgSessionDuration    float64
	AvgMessagesPerSession float64
	TotalInputTokens      int
	TotalOutputTokens     int
	TotalTokens           int
}

// DashboardStats is the aggregate view backing the admin dashboard.
type DashboardStats struct {
	TotalSessions      int64
	ActiveSessions     int64
	TotalUsers         int64
	TotalMessages      int64
	TotalEmailsSent    int64
	AvgSessionDuration float64
	TotalInputTokens   int64
	TotalOutputTokens  int64
	TotalTokens        int64
}
