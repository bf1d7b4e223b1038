package implementation

import (
	"context"
	"errors"
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/mapper"
	"brand-chatbot-be/internal/model"
	"brand-chatbot-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalyticsMapper
}

func NewAnalyticsRepository(db *gorm.DB) contract.AnalyticsRepository {
	return &AnalyticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalyticsMapper(),
	}
}

func (r *AnalyticsRepositoryImpl) IncrementInteraction(ctx context.Context, userId, brandId uuid.UUID, delta contract.InteractionDelta) error {
	now := time.Now()
	totalTokens := delta.InputTokens + delta.OutputTokens

	row := &model.UserBrandInteraction{
		UserId:            userId,
		BrandId:           brandId,
		TotalSessions:     delta.Sessions,
		TotalMessages:     delta.Messages,
		TotalEmailsSent:   delta.EmailsSent,
		TotalInputTokens:  delta.InputTokens,
		TotalOutputTokens: delta.OutputTokens,
		TotalTokens:       totalTokens,
		FirstInteraction:  now,
		LastInteraction:   now,
	}

	// Single-statement additive upsert keyed on (user_id, brand_id).
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "brand_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_sessions":      gorm.Expr("user_brand_interactions.total_sessions + ?", delta.Sessions),
			"total_messages":      gorm.Expr("user_brand_interactions.total_messages + ?", delta.Messages),
			"total_emails_sent":   gorm.Expr("user_brand_interactions.total_emails_sent + ?", delta.EmailsSent),
			"total_input_tokens":  gorm.Expr("user_brand_interactions.total_input_tokens + ?", delta.InputTokens),
			"total_output_tokens": gorm.Expr("user_brand_interactions.total_output_tokens + ?", delta.OutputTokens),
			"total_tokens":        gorm.Expr("user_brand_interactions.total_tokens + ?", totalTokens),
			"last_interaction":    now,
		}),
	}).Create(row).Error
}

func (r *AnalyticsRepositoryImpl) UpsertDailySummary(ctx context.Context, brandId uuid.UUID, date time.Time) error {
	day := date.Truncate(24 * time.Hour)
	nextDay := day.Add(24 * time.Hour)

	var agg struct {
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

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT s.id)                              AS total_sessions,
			COALESCE(SUM(s.message_count), 0)                 AS total_messages,
			COUNT(DISTINCT s.user_id)                         AS total_users,
			COUNT(DISTINCT CASE WHEN u.first_seen >= ? THEN u.id END) AS new_users,
			COALESCE(SUM(CASE WHEN s.email_sent THEN 1 ELSE 0 END), 0) AS emails_sent,
			COALESCE(AVG(s.duration_seconds), 0)              AS avg_session_duration,
			COALESCE(AVG(s.message_count), 0)                 AS avg_messages_per_session,
			COALESCE(SUM(s.total_input_tokens), 0)            AS total_input_tokens,
			COALESCE(SUM(s.total_output_tokens), 0)           AS total_output_tokens,
			COALESCE(SUM(s.total_tokens), 0)                  AS total_tokens
		FROM sessions s
		LEFT JOIN users u ON s.user_id = u.id
		WHERE s.brand_id = ? AND s.started_at >= ? AND s.started_at < ?`,
		day, brandId, day, nextDay,
	).Scan(&agg).Error
	if err != nil {
		return err
	}

	row := &model.AnalyticsSummary{
		BrandId:               brandId,
		Date:                  day,
		TotalSessions:         agg.TotalSessions,
		TotalMessages:         agg.TotalMessages,
		TotalUsers:            agg.TotalUsers,
		NewUsers:              agg.NewUsers,
		EmailsSent:            agg.EmailsSent,
		AvgSessionDuration:    agg.AvgSessionDuration,
		AvgMessagesPerSession: agg.AvgMessagesPerSession,
		TotalInputTokens:      agg.TotalInputTokens,
		TotalOutputTokens:     agg.TotalOutputTokens,
		TotalTokens:           agg.TotalTokens,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "brand_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(row).Error
}

func (r *AnalyticsRepositoryImpl) GetInteraction(ctx context.Context, userId, brandId uuid.UUID) (*entity.UserBrandInteraction, error) {
	var m model.UserBrandInteraction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND brand_id = ?", userId, brandId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InteractionToEntity(&m), nil
}

func (r *AnalyticsRepositoryImpl) GetDailySummaries(ctx context.Context, brandId uuid.UUID, from, to time.Time) ([]*entity.AnalyticsSummary, error) {
	var models []*model.AnalyticsSummary
	err := r.db.WithContext(ctx).
		Where("brand_id = ? AND date >= ? AND date <= ?", brandId, from, to).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.AnalyticsSummary, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SummaryToEntity(m)
	}
	return entities, nil
}

func (r *AnalyticsRepositoryImpl) GetDashboardStats(ctx context.Context, brandId *uuid.UUID) (*entity.DashboardStats, error) {
	query := r.db.WithContext(ctx).Model(&model.Session{})
	if brandId != nil {
		query = query.Where("brand_id = ?", *brandId)
	}

	var stats entity.DashboardStats
	err := query.Select(`
		COUNT(DISTINCT id)                                  AS total_sessions,
		COUNT(DISTINCT id) FILTER (WHERE status = 'active') AS active_sessions,
		COUNT(DISTINCT user_id)                             AS total_users,
		COALESCE(SUM(message_count), 0)                     AS total_messages,
		COALESCE(SUM(CASE WHEN email_sent THEN 1 ELSE 0 END), 0) AS total_emails_sent,
		COALESCE(AVG(duration_seconds), 0)                  AS avg_session_duration,
		COALESCE(SUM(total_input_tokens), 0)                AS total_input_tokens,
		COALESCE(SUM(total_output_tokens), 0)               AS total_output_tokens,
		COALESCE(SUM(total_tokens), 0)                      AS total_tokens`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
