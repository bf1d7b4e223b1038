package service

import (
	"context"
	"encoding/json"

	"brand-chatbot-be/internal/constant"
	"brand-chatbot-be/internal/pkg/logger"
	internalWS "brand-chatbot-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IFeedService relays session lifecycle events from the in-process bus to
// the admin websocket hub.
type IFeedService interface {
	Run(ctx context.Context) error
}

type feedService struct {
	subscriber message.Subscriber
	hub        *internalWS.Hub
	sysLogs    logger.ILogger
}

func NewFeedService(subscriber message.Subscriber, hub *internalWS.Hub, sysLogs logger.ILogger) IFeedService {
	return &feedService{
		subscriber: subscriber,
		hub:        hub,
		sysLogs:    sysLogs,
	}
}

func (s *feedService) Run(ctx context.Context) error {
	topics := []string{
		constant.TopicSessionStarted,
		constant.TopicSessionEnded,
		constant.TopicSessionTimeout,
	}

	for _, topic := range topics {
		messages, err := s.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go s.relay(topic, messages)
	}

	s.sysLogs.Info("Feed", "Admin feed relay started", nil)
	<-ctx.Done()
	return nil
}

func (s *feedService) relay(topic string, messages <-chan *message.Message) {
	for msg := range messages {
		frame, err := json.Marshal(map[string]interface{}{
			"topic":      topic,
			"event_type": msg.Metadata.Get("event_type"),
			"data":       json.RawMessage(msg.Payload),
		})
		if err == nil {
			s.hub.Broadcast(frame)
		}
		msg.Ack()
	}
}
