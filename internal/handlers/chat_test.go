package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/instaboost/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/chat/send", map[string]any{
		"name":    "visitor",
		"message": "is my order on the way?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody[SendMessageResponse](t, rec)
	assert.Equal(t, "sent", resp.Status)

	require.Len(t, env.chat.messages, 1)
	msg := env.chat.messages[0]
	assert.Equal(t, "visitor", msg.Name)
	assert.False(t, msg.IsAdmin)
}

func TestSendMessageMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{"message": "hello"}},
		{name: "missing message", body: map[string]any{"name": "visitor"}},
		{name: "empty body", body: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			rec := env.do(t, http.MethodPost, "/api/chat/send", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "name and message required", errorMessage(t, rec))
		})
	}
}

func TestListMessagesKeepsInsertionOrder(t *testing.T) {
	env := newTestEnv()

	// Interleave admin and visitor messages; the log must come back in
	// send order regardless of the flag.
	for i := 0; i < 5; i++ {
		_, err := env.chat.Create(context.Background(), types.SupportMessage{
			Name:    fmt.Sprintf("sender-%d", i),
			Message: fmt.Sprintf("message %d", i),
			IsAdmin: i%2 == 1,
		})
		require.NoError(t, err)
	}

	rec := env.do(t, http.MethodGet, "/api/chat/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeBody[[]ChatMessageItem](t, rec)
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("sender-%d", i), item.Name)
		assert.Equal(t, fmt.Sprintf("message %d", i), item.Message)
		assert.Equal(t, i%2 == 1, item.IsAdmin)
	}
}

func TestRootAndHealth(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "InstaBoost API - Ready for Render!", body["message"])

	rec = env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
