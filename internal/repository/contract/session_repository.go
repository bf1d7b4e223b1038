package contract

import (
	"context"
	"time"

	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TouchUpdate carries the per-message increments applied by Touch.
type TouchUpdate struct {
	Role         entity.MessageRole
	InputTokens  int
	OutputTokens int
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Touch advances last_activity and accumulates counters in ONE conditional
	// UPDATE guarded by status='active'. Returns false when the session is
	// terminal or unknown; it never resurrects a closed session.
	Touch(ctx context.Context, sessionKey string, upd TouchUpdate, now time.Time) (bool, error)

	// Close transitions an active session to the given terminal status, filling
	// ended_at and duration_seconds inside the statement. Returns false when
	// the session was already terminal (idempotent no-op) or unknown.
	Close(ctx context.Context, sessionKey string, status entity.SessionStatus, now time.Time) (bool, error)

	// CloseStale bulk-transitions every active session with last_activity
	// before cutoff to 'timeout'. The staleness predicate is part of the
	// UPDATE itself, so rows touched concurrently are skipped by the database
	// rather than overwritten. Returns the number of sessions closed.
	CloseStale(ctx context.Context, cutoff, now time.Time) (int64, error)

	AssignUser(ctx context.Context, sessionId, userId uuid.UUID) error
	MarkEmailSent(ctx context.Context, sessionId uuid.UUID, at time.Time) error

	// DeleteEndedBefore hard-deletes ended sessions older than the cutoff
	// (maintenance path); messages and email logs cascade.
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
