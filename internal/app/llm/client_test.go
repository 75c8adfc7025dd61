package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OpenAIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewOpenAIClient(config.OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   1200,
	}, zap.NewNop())
	return client, srv
}

func TestChatCompletionReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotBody completionRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Visita Palenque."}},
			},
		})
	})

	content, err := client.ChatCompletion(context.Background(), Request{
		Messages:    []Message{{Role: RoleUser, Content: "¿Qué visitar?"}},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Visita Palenque.", content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
	assert.Nil(t, gotBody.ResponseFormat)
}

func TestChatCompletionJSONMode(t *testing.T) {
	var gotBody completionRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"ok":true}`}},
			},
		})
	})

	_, err := client.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hola"}},
		JSONMode: true,
	})
	require.NoError(t, err)
	require.NotNil(t, gotBody.ResponseFormat)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
}

func TestChatCompletionProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	})

	_, err := client.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hola"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestChatCompletionMissingKey(t *testing.T) {
	client := NewOpenAIClient(config.OpenAIConfig{BaseURL: "http://localhost:0"}, zap.NewNop())
	_, err := client.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hola"}},
	})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestChatCompletionEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.ChatCompletion(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hola"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
