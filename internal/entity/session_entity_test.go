package entity

import (
	"testing"
	"time"
)

func TestSessionStatusTerminal(t *testing.T) {
	tests := []struct {
		name         string
		status       SessionStatus
		wantTerminal bool
	}{
		{name: "active is not terminal", status: SessionStatusActive, wantTerminal: false},
		{name: "ended is terminal", status: SessionStatusEnded, wantTerminal: true},
		{name: "timeout is terminal", status: SessionStatusTimeout, wantTerminal: true},
		{name: "unknown is not terminal", status: SessionStatus("draft"), wantTerminal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.wantTerminal {
				t.Errorf("Terminal() = %v, want %v", got, tt.wantTerminal)
			}
		})
	}
}

func TestSessionStaleAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	idleTimeout := 5 * time.Minute

	tests := []struct {
		name         string
		status       SessionStatus
		lastActivity time.Time
		wantStale    bool
	}{
		{
			name:         "active and idle past timeout",
			status:       SessionStatusActive,
			lastActivity: now.Add(-6 * time.Minute),
			wantStale:    true,
		},
		{
			name:         "active and recently touched",
			status:       SessionStatusActive,
			lastActivity: now.Add(-1 * time.Minute),
			wantStale:    false,
		},
		{
			name:         "active exactly at cutoff",
			status:       SessionStatusActive,
			lastActivity: now.Add(-idleTimeout),
			wantStale:    false,
		},
		{
			name:         "ended sessions are never stale",
			status:       SessionStatusEnded,
			lastActivity: now.Add(-1 * time.Hour),
			wantStale:    false,
		},
		{
			name:         "timed out sessions are never stale",
			status:       SessionStatusTimeout,
			lastActivity: now.Add(-1 * time.Hour),
			wantStale:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{
				Status:       tt.status,
				LastActivity: tt.lastActivity,
			}
			if got := s.StaleAt(now, idleTimeout); got != tt.wantStale {
				t.Errorf("StaleAt() = %v, want %v", got, tt.wantStale)
			}
		})
	}
}

func TestMessageRoleValid(t *testing.T) {
	tests := []struct {
		role  MessageRole
		valid bool
	}{
		{MessageRoleUser, true},
		{MessageRoleAssistant, true},
		{MessageRoleSystem, true},
		{MessageRole("bot"), false},
		{MessageRole(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
