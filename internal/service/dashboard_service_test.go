package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"brand-chatbot-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConversationsCSV(t *testing.T) {
	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	items := []dto.ConversationExport{
		{
			SessionKey: "sk-1",
			BrandKey:   "demo",
			Status:     "ended",
			UserName:   "Ada",
			UserEmail:  "ada@example.com",
			StartedAt:  started,
			Messages: []dto.ConversationExportMessage{
				{Role: "user", Content: "hello, I need pricing", Timestamp: started.Add(time.Minute)},
				{Role: "assistant", Content: "sure, here it is", Timestamp: started.Add(2 * time.Minute)},
			},
		},
		{
			// A session with no transcript still exports one row.
			SessionKey: "sk-2",
			BrandKey:   "demo",
			Status:     "timeout",
			StartedAt:  started,
		},
	}

	data, err := renderConversationsCSV(items)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 2 messages + 1 empty session

	assert.Equal(t, "session_key", rows[0][0])
	assert.Equal(t, "role", rows[0][6])

	assert.Equal(t, []string{
		"sk-1", "demo", "ended", started.Format(time.RFC3339),
		"Ada", "ada@example.com",
		"user", "hello, I need pricing", started.Add(time.Minute).Format(time.RFC3339),
	}, rows[1])

	assert.Equal(t, "assistant", rows[2][6])

	assert.Equal(t, "sk-2", rows[3][0])
	assert.Equal(t, "timeout", rows[3][2])
	assert.Empty(t, rows[3][6])
}

func TestRenderConversationsCSVQuotesCommasAndNewlines(t *testing.T) {
	items := []dto.ConversationExport{
		{
			SessionKey: "sk-3",
			BrandKey:   "demo",
			Status:     "ended",
			StartedAt:  time.Now(),
			Messages: []dto.ConversationExportMessage{
				{Role: "user", Content: "line one\nline two, with comma", Timestamp: time.Now()},
			},
		},
	}

	data, err := renderConversationsCSV(items)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "line one\nline two, with comma", rows[1][7])
}
