package mapper

import (
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/model"
)

type AnalyticsMapper struct{}

func NewAnalyticsMapper() *AnalyticsMapper {
	return &AnalyticsMapper{}
}

func (m *AnalyticsMapper) InteractionToEntity(i *model.UserBrandInteraction) *entity.UserBrandInteraction {
	if i == nil {
		return nil
	}
	return &entity.UserBrandInteraction{
		Id:                i.Id,
		UserId:            i.UserId,
		BrandId:           i.BrandId,
		TotalSessions:     i.TotalSessions,
		TotalMessages:     i.TotalMessages,
		TotalEmailsSent:   i.TotalEmailsSent,
		TotalInputTokens:  i.TotalInputTokens,
		TotalOutputTokens: i.TotalOutputTokens,
		TotalTokens:       i.TotalTokens,
		FirstInteraction:  i.FirstInteraction,
		LastInteraction:   i.LastInteraction,
	}
}

func (m *AnalyticsMapper) SummaryToEntity(s *model.AnalyticsSummary) *entity.AnalyticsSummary {
	if s == nil {
		return nil
	}
	return &entity.AnalyticsSummary{
		Id:                    s.Id,
		BrandId:               s.BrandId,
		Date:                  s.Date,
		TotalSessions:         s.TotalSessions,
		TotalMessages:         s.TotalMessages,
		TotalUsers:            s.TotalUsers,
		NewUsers:              s.NewUsers,
		EmailsSent:            s.EmailsSent,
		AvgSessionDuration:    s.AvgSessionDuration,
		AvgMessagesPerSession: s.AvgMessagesPerSession,
		TotalInputTokens:      s.TotalInputTokens,
		TotalOutputTokens:     s.TotalOutputTokens,
		TotalTokens:           s.TotalTokens,
	}
}
