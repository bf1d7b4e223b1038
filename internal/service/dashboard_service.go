package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"time"

	"brand-chatbot-be/internal/config"
	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/internal/pkg/serverutils"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDashboardService interface {
	Stats(ctx context.Context, brandId *uuid.UUID) (*dto.DashboardStatsResponse, error)
	ListSessions(ctx context.Context, brandId *uuid.UUID, status string, limit, offset int) ([]*entity.Session, int64, error)
	ListEmailLogs(ctx context.Context, limit, offset int) ([]*dto.EmailLogResponse, int64, error)
	Logs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)

	// CleanupSessions hard-deletes ended sessions older than the given number
	// of days; transcripts and email logs cascade with them.
	CleanupSessions(ctx context.Context, req *dto.CleanupSessionsRequest) (*dto.CleanupSessionsResponse, error)

	// RunDailySummary recomputes the (brand, date) analytics row from session
	// aggregates.
	RunDailySummary(ctx context.Context, req *dto.DailySummaryRequest) error
	DailySummaries(ctx context.Context, brandId uuid.UUID, from, to time.Time) ([]*entity.AnalyticsSummary, error)

	// ExportConversations renders the transcripts of sessions started in the
	// last N days as JSON or CSV. Returns the document and its content type.
	ExportConversations(ctx context.Context, brandId *uuid.UUID, days int, format string) ([]byte, string, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogs    logger.ILogger
	reaperCfg  config.ReaperConfig
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, sysLogs logger.ILogger, reaperCfg config.ReaperConfig) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		sysLogs:    sysLogs,
		reaperCfg:  reaperCfg,
	}
}

func (s *dashboardService) Stats(ctx context.Context, brandId *uuid.UUID) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.AnalyticsRepository().GetDashboardStats(ctx, brandId)
	if err != nil {
		return nil, err
	}

	// Sessions already past the idle threshold but not yet swept; a non-zero
	// value between reaper ticks is normal.
	staleSpecs := []specification.Specification{
		specification.StaleSince{Cutoff: time.Now().Add(-s.reaperCfg.IdleTimeout)},
	}
	if brandId != nil {
		staleSpecs = append(staleSpecs, specification.ByBrandID{BrandID: *brandId})
	}
	stale, err := uow.SessionRepository().Count(ctx, staleSpecs...)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalSessions:      stats.TotalSessions,
		ActiveSessions:     stats.ActiveSessions,
		StaleSessions:      stale,
		TotalUsers:         stats.TotalUsers,
		TotalMessages:      stats.TotalMessages,
		TotalEmailsSent:    stats.TotalEmailsSent,
		AvgSessionDuration: stats.AvgSessionDuration,
		TotalInputTokens:   stats.TotalInputTokens,
		TotalOutputTokens:  stats.TotalOutputTokens,
		TotalTokens:        stats.TotalTokens,
	}, nil
}

func (s *dashboardService) ListSessions(ctx context.Context, brandId *uuid.UUID, status string, limit, offset int) ([]*entity.Session, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{}
	if brandId != nil {
		filters = append(filters, specification.ByBrandID{BrandID: *brandId})
	}
	if status != "" {
		filters = append(filters, specification.ByStatus{Status: entity.SessionStatus(status)})
	}

	total, err := uow.SessionRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "started_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	sessions, err := uow.SessionRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (s *dashboardService) ListEmailLogs(ctx context.Context, limit, offset int) ([]*dto.EmailLogResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.EmailLogRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	logs, err := uow.EmailLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.EmailLogResponse, 0, len(logs))
	for _, l := range logs {
		resp := &dto.EmailLogResponse{
			Id:           l.Id,
			Recipients:   l.RecipientEmails,
			Subject:      l.Subject,
			Status:       string(l.Status),
			ErrorMessage: l.ErrorMessage,
			AttemptCount: l.AttemptCount,
			SentAt:       l.SentAt,
			CreatedAt:    l.CreatedAt,
		}
		if session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: l.SessionId}); err == nil && session != nil {
			resp.SessionKey = session.SessionKey
		}
		responses = append(responses, resp)
	}
	return responses, total, nil
}

func (s *dashboardService) Logs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.sysLogs.GetLogs(level, limit, offset)
}

func (s *dashboardService) CleanupSessions(ctx context.Context, req *dto.CleanupSessionsRequest) (*dto.CleanupSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cutoff := time.Now().AddDate(0, 0, -req.Days)
	deleted, err := uow.SessionRepository().DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	s.sysLogs.Info("Dashboard", "Session cleanup completed", map[string]interface{}{
		"deleted": deleted,
		"cutoff":  cutoff.Format(time.RFC3339),
	})
	return &dto.CleanupSessionsResponse{Deleted: deleted}, nil
}

func (s *dashboardService) RunDailySummary(ctx context.Context, req *dto.DailySummaryRequest) error {
	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return serverutils.NewBadRequestError("date must be YYYY-MM-DD")
		}
		date = parsed
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AnalyticsRepository().UpsertDailySummary(ctx, req.BrandId, date)
}

func (s *dashboardService) DailySummaries(ctx context.Context, brandId uuid.UUID, from, to time.Time) ([]*entity.AnalyticsSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AnalyticsRepository().GetDailySummaries(ctx, brandId, from, to)
}

func (s *dashboardService) ExportConversations(ctx context.Context, brandId *uuid.UUID, days int, format string) ([]byte, string, error) {
	if format != "json" && format != "csv" {
		return nil, "", serverutils.NewBadRequestError("format must be json or csv")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.StartedSince{Since: time.Now().AddDate(0, 0, -days)},
	}
	if brandId != nil {
		specs = append(specs, specification.ByBrandID{BrandID: *brandId})
	}
	sessions, err := uow.SessionRepository().FindAll(ctx,
		append(specs, specification.OrderBy{Field: "started_at", Desc: true})...)
	if err != nil {
		return nil, "", err
	}

	brandKeys := map[uuid.UUID]string{}
	items := make([]dto.ConversationExport, 0, len(sessions))
	for _, session := range sessions {
		brandKey, ok := brandKeys[session.BrandId]
		if !ok {
			if brand, err := uow.BrandRepository().FindOne(ctx, specification.ByID{ID: session.BrandId}); err == nil && brand != nil {
				brandKey = brand.BrandKey
			}
			brandKeys[session.BrandId] = brandKey
		}

		item := dto.ConversationExport{
			SessionKey:      session.SessionKey,
			BrandKey:        brandKey,
			Status:          string(session.Status),
			StartedAt:       session.StartedAt,
			EndedAt:         session.EndedAt,
			DurationSeconds: session.DurationSeconds,
			MessageCount:    session.MessageCount,
			TotalTokens:     session.TotalTokens,
		}
		if session.UserId != nil {
			if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *session.UserId}); err == nil && user != nil {
				item.UserName = user.Name
				item.UserEmail = user.Email
			}
		}

		messages, err := uow.MessageRepository().FindAll(ctx,
			specification.BySessionID{SessionID: session.Id},
			specification.OrderBy{Field: "message_order"},
		)
		if err != nil {
			return nil, "", err
		}
		item.Messages = make([]dto.ConversationExportMessage, 0, len(messages))
		for _, m := range messages {
			item.Messages = append(item.Messages, dto.ConversationExportMessage{
				Role:      string(m.Role),
				Content:   m.Content,
				Timestamp: m.CreatedAt,
			})
		}
		items = append(items, item)
	}

	s.sysLogs.Info("Dashboard", "Conversation export rendered", map[string]interface{}{
		"sessions": len(items),
		"days":     days,
		"format":   format,
	})

	if format == "csv" {
		data, err := renderConversationsCSV(items)
		return data, "text/csv", err
	}
	data, err := json.MarshalIndent(items, "", "  ")
	return data, "application/json", err
}

// renderConversationsCSV flattens transcripts to one row per message. Session
// columns repeat on every row so the file filters cleanly in a spreadsheet.
func renderConversationsCSV(items []dto.ConversationExport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"session_key", "brand_key", "status", "started_at",
		"user_name", "user_email", "role", "content", "message_timestamp",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, item := range items {
		if len(item.Messages) == 0 {
			if err := w.Write([]string{
				item.SessionKey, item.BrandKey, item.Status,
				item.StartedAt.Format(time.RFC3339),
				item.UserName, item.UserEmail, "", "", "",
			}); err != nil {
				return nil, err
			}
			continue
		}
		for _, m := range item.Messages {
			if err := w.Write([]string{
				item.SessionKey, item.BrandKey, item.Status,
				item.StartedAt.Format(time.RFC3339),
				item.UserName, item.UserEmail,
				m.Role, m.Content, m.Timestamp.Format(time.RFC3339),
			}); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
