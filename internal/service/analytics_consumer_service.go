package service

import (
	"context"
	"fmt"

	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/internal/repository/specification"
	"brand-chatbot-be/internal/repository/unitofwork"
	"brand-chatbot-be/pkg/events"

	pkgNats "brand-chatbot-be/pkg/nats"
)

// IAnalyticsConsumerService keeps the daily analytics rows warm: a durable
// JetStream consumer re-aggregates the (brand, day) summary whenever a session
// ends, so the dashboard reads current numbers without an explicit trigger.
// The durable consumer replays anything missed across restarts.
type IAnalyticsConsumerService interface {
	Start()
}

type analyticsConsumerService struct {
	subscriber *pkgNats.Subscriber
	uowFactory unitofwork.RepositoryFactory
	sysLogs    logger.ILogger
}

func NewAnalyticsConsumerService(
	subscriber *pkgNats.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	sysLogs logger.ILogger,
) IAnalyticsConsumerService {
	return &analyticsConsumerService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		sysLogs:    sysLogs,
	}
}

func (s *analyticsConsumerService) Start() {
	subject := fmt.Sprintf("chatbot.events.%s", events.TypeSessionEnded)
	err := s.subscriber.Subscribe(subject, "analytics-rollup-worker", s.handleSessionEnded)
	if err != nil {
		s.sysLogs.Error("AnalyticsConsumer", "Failed to start analytics subscriber", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.sysLogs.Info("AnalyticsConsumer", "Analytics rollup consumer started", map[string]interface{}{
		"subject": subject,
	})
}

func (s *analyticsConsumerService) handleSessionEnded(ctx context.Context, event events.Event) error {
	brandKey, _ := event.Payload()["brand_key"].(string)
	if brandKey == "" {
		// Malformed payload; acking it is better than a redelivery loop.
		s.sysLogs.Warn("AnalyticsConsumer", "Session-ended event without brand_key", map[string]interface{}{
			"type": event.EventType(),
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	brand, err := uow.BrandRepository().FindOne(ctx, specification.ByBrandKey{BrandKey: brandKey})
	if err != nil {
		return err
	}
	if brand == nil {
		s.sysLogs.Warn("AnalyticsConsumer", "Session-ended event for unknown brand", map[string]interface{}{
			"brand_key": brandKey,
		})
		return nil
	}

	return uow.AnalyticsRepository().UpsertDailySummary(ctx, brand.Id, event.Timestamp())
}
