package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_ENDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes used across the service.
const (
	TypeSessionStarted = "SESSION_STARTED"
	TypeSessionEnded   = "SESSION_ENDED"
	TypeSessionTimeout = "SESSION_TIMEOUT"
	TypeEmailSent      = "EMAIL_SENT"
	TypeEmailFailed    = "EMAIL_FAILED"
)

func NewSessionEvent(eventType, sessionKey, brandKey string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"session_key": sessionKey,
			"brand_key":   brandKey,
		},
		OccurredAt: time.Now(),
	}
}
