package constant

// Watermill topics for the in-process event bus.
const (
	TopicSessionStarted = "session.started"
	TopicSessionEnded   = "session.ended"
	TopicSessionTimeout = "session.timeout"
)

// Redis keys.
const (
	ReaperLeaseKey   = "chatbot:reaper:lease"
	AdminFeedChannel = "chatbot:admin:feed"
)
