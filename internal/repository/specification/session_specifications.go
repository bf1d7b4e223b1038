package specification

import (
	"time"

	"brand-chatbot-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionKey filters by the externally-issued session identifier.
type BySessionKey struct {
	SessionKey string
}

func (s BySessionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_key = ?", s.SessionKey)
}

// ByBrandID scopes a query to one tenant.
type ByBrandID struct {
	BrandID uuid.UUID
}

func (s ByBrandID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand_id = ?", s.BrandID)
}

// BySessionID filters message/email rows belonging to one session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByStatus filters sessions by lifecycle status.
type ByStatus struct {
	Status entity.SessionStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// StaleSince selects active sessions whose last_activity predates the cutoff.
// The dashboard uses it for the stale-session gauge; the reaper's closing
// UPDATE carries the same predicate inline so a touch between a read here and
// the sweep still wins.
type StaleSince struct {
	Cutoff time.Time
}

func (s StaleSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND last_activity < ?", string(entity.SessionStatusActive), s.Cutoff)
}

// StartedSince filters sessions started at or after the given instant.
type StartedSince struct {
	Since time.Time
}

func (s StartedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("started_at >= ?", s.Since)
}
