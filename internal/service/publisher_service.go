package service

import (
	"context"
	"encoding/json"

	"brand-chatbot-be/internal/pkg/logger"
	"brand-chatbot-be/pkg/events"
	pkgNats "brand-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IPublisherService fans session/email events out to the in-process bus
// (mail consumer, admin feed) and to NATS for external consumers. Event
// delivery is best-effort: a bus failure never fails the chat request.
type IPublisherService interface {
	PublishSessionEvent(ctx context.Context, topic string, event events.Event)
}

type publisherService struct {
	bus     message.Publisher
	nats    *pkgNats.Publisher
	sysLogs logger.ILogger
}

func NewPublisherService(bus message.Publisher, natsPub *pkgNats.Publisher, sysLogs logger.ILogger) IPublisherService {
	return &publisherService{
		bus:     bus,
		nats:    natsPub,
		sysLogs: sysLogs,
	}
}

func (s *publisherService) PublishSessionEvent(ctx context.Context, topic string, event events.Event) {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		s.sysLogs.Error("Publisher", "Failed to marshal event payload", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	msg.Metadata.Set("event_type", event.EventType())
	if err := s.bus.Publish(topic, msg); err != nil {
		s.sysLogs.Error("Publisher", "Failed to publish to internal bus", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
	}

	if s.nats != nil {
		if err := s.nats.Publish(ctx, event); err != nil {
			s.sysLogs.Warn("Publisher", "Failed to publish to NATS", map[string]interface{}{
				"topic": topic,
				"error": err.Error(),
			})
		}
	}
}
