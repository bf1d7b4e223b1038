package service

import (
	"context"
	"encoding/json"
	"time"

	"brand-chatbot-be/internal/constant"
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/internal/pkg/mailer"
	"brand-chatbot-be/internal/repository/contract"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IConsumerService drains the in-process event bus. Session-ended events turn
// into conversation summary mails; the chat request that triggered the close
// never waits on SMTP.
type IConsumerService interface {
	Run(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	uowFactory   unitofwork.RepositoryFactory
	brandService IBrandService
	emailService mailer.IEmailService
	sysLogs      logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	brandService IBrandService,
	emailService mailer.IEmailService,
	sysLogs logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		uowFactory:   uowFactory,
		brandService: brandService,
		emailService: emailService,
		sysLogs:      sysLogs,
	}
}

func (s *consumerService) Run(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, constant.TopicSessionEnded)
	if err != nil {
		return err
	}

	s.sysLogs.Info("Consumer", "Session-ended consumer started", nil)

	for msg := range messages {
		s.handleSessionEnded(ctx, msg)
		msg.Ack()
	}
	return nil
}

type sessionEndedPayload struct {
	SessionKey string `json:"session_key"`
	BrandKey   string `json:"brand_key"`
	SendEmail  bool   `json:"send_email"`
}

func (s *consumerService) handleSessionEnded(ctx context.Context, msg *message.Message) {
	var payload sessionEndedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.sysLogs.Error("Consumer", "Malformed session-ended payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if !payload.SendEmail {
		return
	}

	if err := s.sendSummary(ctx, payload.SessionKey); err != nil {
		s.sysLogs.Error("Consumer", "Summary mail failed", map[string]interface{}{
			"session_key": payload.SessionKey,
			"error":       err.Error(),
		})
	}
}

func (s *consumerService) sendSummary(ctx context.Context, sessionKey string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return err
	}
	if session == nil || session.EmailSent {
		return nil
	}

	brand, err := s.brandService.GetById(ctx, session.BrandId)
	if err != nil {
		return err
	}
	if brand == nil {
		return nil
	}

	recipients, err := s.brandService.ActiveRecipientEmails(ctx, session.BrandId)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		s.sysLogs.Warn("Consumer", "No recipients configured, skipping summary", map[string]interface{}{
			"brand_key":   brand.BrandKey,
			"session_key": sessionKey,
		})
		return nil
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "message_order"},
	)
	if err != nil {
		return err
	}

	var user *entity.User
	if session.UserId != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: *session.UserId})
		if err != nil {
			return err
		}
	}

	subject, htmlBody := mailer.BuildConversationSummary(mailer.SummaryInput{
		Brand:    brand,
		Session:  session,
		User:     user,
		Messages: messages,
	})

	emailLog := &entity.EmailLog{
		Id:              uuid.New(),
		SessionId:       session.Id,
		UserId:          session.UserId,
		BrandId:         session.BrandId,
		RecipientEmails: recipients,
		Subject:         subject,
		HtmlContent:     htmlBody,
		Status:          entity.EmailStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := uow.EmailLogRepository().Create(ctx, emailLog); err != nil {
		return err
	}

	if err := s.emailService.SendHTML(recipients, subject, htmlBody); err != nil {
		_ = uow.EmailLogRepository().MarkFailed(ctx, emailLog.Id, err.Error())
		return err
	}

	now := time.Now()
	if err := uow.EmailLogRepository().MarkSent(ctx, emailLog.Id, now); err != nil {
		return err
	}
	if err := uow.SessionRepository().MarkEmailSent(ctx, session.Id, now); err != nil {
		return err
	}

	if session.UserId != nil {
		_ = uow.AnalyticsRepository().IncrementInteraction(ctx, *session.UserId, session.BrandId,
			contract.InteractionDelta{EmailsSent: 1})
	}

	s.sysLogs.Info("Consumer", "Summary mail sent", map[string]interface{}{
		"session_key": sessionKey,
		"brand_key":   brand.BrandKey,
		"recipients":  len(recipients),
	})
	return nil
}
