package mapper

import (
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	return &entity.Session{
		Id:         s.Id,
		SessionKey: s.SessionKey,
		BrandId:    s.BrandId,
		UserId:     s.UserId,
		Status:     entity.SessionStatus(s.Status),

		StartedAt:       s.StartedAt,
		LastActivity:    s.LastActivity,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,

		MessageCount:          s.MessageCount,
		UserMessageCount:      s.UserMessageCount,
		AssistantMessageCount: s.AssistantMessageCount,

		LastInputTokens:   s.LastInputTokens,
		LastOutputTokens:  s.LastOutputTokens,
		LastTokenUsage:    s.LastTokenUsage,
		TotalInputTokens:  s.TotalInputTokens,
		TotalOutputTokens: s.TotalOutputTokens,
		TotalTokens:       s.TotalTokens,

		EmailSent:   s.EmailSent,
		EmailSentAt: s.EmailSentAt,
	}
}

func (m *SessionMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	return &model.Session{
		Id:         s.Id,
		SessionKey: s.SessionKey,
		BrandId:    s.BrandId,
		UserId:     s.UserId,
		Status:     string(s.Status),

		StartedAt:       s.StartedAt,
		LastActivity:    s.LastActivity,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,

		MessageCount:          s.MessageCount,
		UserMessageCount:      s.UserMessageCount,
		AssistantMessageCount: s.AssistantMessageCount,

		LastInputTokens:   s.LastInputTokens,
		LastOutputTokens:  s.LastOutputTokens,
		LastTokenUsage:    s.LastTokenUsage,
		TotalInputTokens:  s.TotalInputTokens,
		TotalOutputTokens: s.TotalOutputTokens,
		TotalTokens:       s.TotalTokens,

		EmailSent:   s.EmailSent,
		EmailSentAt: s.EmailSentAt,
	}
}

func (m *SessionMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:               msg.Id,
		SessionId:        msg.SessionId,
		Role:             entity.MessageRole(msg.Role),
		Content:          msg.Content,
		FormattedContent: msg.FormattedContent,
		ContentType:      msg.ContentType,
		FileName:         msg.FileName,
		FileSize:         msg.FileSize,
		InputTokens:      msg.InputTokens,
		OutputTokens:     msg.OutputTokens,
		TotalTokens:      msg.TotalTokens,
		MessageOrder:     msg.MessageOrder,
		CreatedAt:        msg.CreatedAt,
	}
}

func (m *SessionMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:               msg.Id,
		SessionId:        msg.SessionId,
		Role:             string(msg.Role),
		Content:          msg.Content,
		FormattedContent: msg.FormattedContent,
		ContentType:      msg.ContentType,
		FileName:         msg.FileName,
		FileSize:         msg.FileSize,
		InputTokens:      msg.InputTokens,
		OutputTokens:     msg.OutputTokens,
		TotalTokens:      msg.TotalTokens,
		MessageOrder:     msg.MessageOrder,
		CreatedAt:        msg.CreatedAt,
	}
}
