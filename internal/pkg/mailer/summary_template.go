package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"brand-chatbot-be/internal/entity"
)

// SummaryInput holds everything the conversation summary mail needs. User is
// nil when the visitor never shared contact details.
type SummaryInput struct {
	Brand    *entity.Brand
	Session  *entity.Session
	User     *entity.User
	Messages []*entity.Message
}

// BuildConversationSummary renders the subject and HTML body for a session
// summary mail. All visitor-supplied text is escaped.
func BuildConversationSummary(in SummaryInput) (subject, htmlBody string) {
	subject = fmt.Sprintf("Conversation Summary - %s", in.Brand.DisplayName)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 640px; margin: 0 auto; color: #333;">`)
	fmt.Fprintf(&b, `<h2 style="color: #1a73e8;">%s - Conversation Summary</h2>`, html.EscapeString(in.Brand.DisplayName))

	b.WriteString(`<table style="border-collapse: collapse; width: 100%; margin-bottom: 16px;">`)
	writeRow(&b, "Session", in.Session.SessionKey)
	writeRow(&b, "Started", in.Session.StartedAt.Format("2006-01-02 15:04:05 MST"))
	if in.Session.DurationSeconds != nil {
		writeRow(&b, "Duration", formatDuration(*in.Session.DurationSeconds))
	}
	writeRow(&b, "Messages", fmt.Sprintf("%d", in.Session.MessageCount))

	if in.User != nil {
		writeRow(&b, "Contact", html.EscapeString(in.User.Email))
		if in.User.Name != "" {
			writeRow(&b, "Name", html.EscapeString(in.User.Name))
		}
		if in.User.Phone != "" {
			writeRow(&b, "Phone", html.EscapeString(in.User.Phone))
		}
		if in.User.BusinessName != "" {
			writeRow(&b, "Business", html.EscapeString(in.User.BusinessName))
		}
	}
	b.WriteString(`</table>`)

	b.WriteString(`<h3 style="border-bottom: 1px solid #ddd; padding-bottom: 4px;">Transcript</h3>`)
	for _, msg := range in.Messages {
		label := "Visitor"
		color := "#1a73e8"
		switch msg.Role {
		case entity.MessageRoleAssistant:
			label = "Assistant"
			color = "#34a853"
		case entity.MessageRoleSystem:
			label = "System"
			color = "#999"
		}
		fmt.Fprintf(&b,
			`<p style="margin: 8px 0;"><strong style="color: %s;">%s</strong><br/>%s</p>`,
			color, label, html.EscapeString(msg.Content))
	}

	fmt.Fprintf(&b,
		`<p style="margin-top: 24px; font-size: 12px; color: #999;">Sent automatically at %s.</p>`,
		time.Now().Format("2006-01-02 15:04:05 MST"))
	b.WriteString(`</div>`)

	return subject, b.String()
}

func writeRow(b *strings.Builder, key, value string) {
	fmt.Fprintf(b,
		`<tr><td style="padding: 4px 8px; font-weight: bold; white-space: nowrap;">%s</td><td style="padding: 4px 8px;">%s</td></tr>`,
		key, value)
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
