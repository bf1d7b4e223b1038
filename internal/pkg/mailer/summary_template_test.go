package mailer

import (
	"strings"
	"testing"
	"time"

	"brand-chatbot-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildConversationSummary(t *testing.T) {
	duration := 125
	session := &entity.Session{
		Id:              uuid.New(),
		SessionKey:      "sess-123",
		Status:          entity.SessionStatusEnded,
		StartedAt:       time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		DurationSeconds: &duration,
		MessageCount:    2,
	}
	brand := &entity.Brand{
		DisplayName: "Acme Widgets",
	}
	user := &entity.User{
		Email: "visitor@example.com",
		Name:  "Pat Visitor",
		Phone: "+1 555 0100",
	}
	messages := []*entity.Message{
		{Role: entity.MessageRoleUser, Content: "Do you ship to <Canada>?", MessageOrder: 1},
		{Role: entity.MessageRoleAssistant, Content: "Yes, we ship worldwide.", MessageOrder: 2},
	}

	subject, body := BuildConversationSummary(SummaryInput{
		Brand:    brand,
		Session:  session,
		User:     user,
		Messages: messages,
	})

	assert.Equal(t, "Conversation Summary - Acme Widgets", subject)

	assert.Contains(t, body, "Acme Widgets")
	assert.Contains(t, body, "sess-123")
	assert.Contains(t, body, "2m 5s")
	assert.Contains(t, body, "visitor@example.com")
	assert.Contains(t, body, "Pat Visitor")
	assert.Contains(t, body, "Yes, we ship worldwide.")

	// Visitor content is escaped, never raw.
	assert.NotContains(t, body, "<Canada>")
	assert.Contains(t, body, "&lt;Canada&gt;")
}

func TestBuildConversationSummaryAnonymousVisitor(t *testing.T) {
	session := &entity.Session{
		SessionKey:   "sess-anon",
		StartedAt:    time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		MessageCount: 1,
	}
	brand := &entity.Brand{DisplayName: "Acme Widgets"}

	_, body := BuildConversationSummary(SummaryInput{
		Brand:    brand,
		Session:  session,
		Messages: []*entity.Message{{Role: entity.MessageRoleUser, Content: "hello"}},
	})

	assert.NotContains(t, body, "Contact")
	assert.Contains(t, body, "sess-anon")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{45, "45s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
		{3601, "60m 1s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSummaryLabelsByRole(t *testing.T) {
	brand := &entity.Brand{DisplayName: "B"}
	session := &entity.Session{SessionKey: "s", StartedAt: time.Now()}

	_, body := BuildConversationSummary(SummaryInput{
		Brand:   brand,
		Session: session,
		Messages: []*entity.Message{
			{Role: entity.MessageRoleUser, Content: "q"},
			{Role: entity.MessageRoleAssistant, Content: "a"},
			{Role: entity.MessageRoleSystem, Content: "sys"},
		},
	})

	for _, label := range []string{"Visitor", "Assistant", "System"} {
		if !strings.Contains(body, label) {
			t.Errorf("body missing role label %q", label)
		}
	}
}
