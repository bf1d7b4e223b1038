package mapper

import (
	"encoding/json"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/model"

	"gorm.io/datatypes"
)

type EmailMapper struct{}

func NewEmailMapper() *EmailMapper {
	return &EmailMapper{}
}

func (m *EmailMapper) ToEntity(e *model.EmailLog) *entity.EmailLog {
	if e == nil {
		return nil
	}

	var recipients []string
	if len(e.RecipientEmails) > 0 {
		// Rows written by this service always hold a JSON string array.
		_ = json.Unmarshal(e.RecipientEmails, &recipients)
	}

	return &entity.EmailLog{
		Id:              e.Id,
		SessionId:       e.SessionId,
		UserId:          e.UserId,
		BrandId:         e.BrandId,
		RecipientEmails: recipients,
		Subject:         e.Subject,
		HtmlContent:     e.HtmlContent,
		Status:          entity.EmailStatus(e.Status),
		ErrorMessage:    e.ErrorMessage,
		AttemptCount:    e.AttemptCount,
		SentAt:          e.SentAt,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *EmailMapper) ToModel(e *entity.EmailLog) *model.EmailLog {
	if e == nil {
		return nil
	}

	recipients, _ := json.Marshal(e.RecipientEmails)

	return &model.EmailLog{
		Id:              e.Id,
		SessionId:       e.SessionId,
		UserId:          e.UserId,
		BrandId:         e.BrandId,
		RecipientEmails: datatypes.JSON(recipients),
		Subject:         e.Subject,
		HtmlContent:     e.HtmlContent,
		Status:          string(e.Status),
		ErrorMessage:    e.ErrorMessage,
		AttemptCount:    e.AttemptCount,
		SentAt:          e.SentAt,
		CreatedAt:       e.CreatedAt,
	}
}
