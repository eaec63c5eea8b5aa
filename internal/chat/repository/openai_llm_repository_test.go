package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stock-intel/internal/chat/config"
	"stock-intel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestConfig(baseURL string) *config.Config {
	return &config.Config{
		LLM: config.LLM{
			APIKey:              "test-key",
			BaseURL:             baseURL,
			Timeout:             5 * time.Second,
			MaxRequestPerMinute: 0,
		},
	}
}

func TestOpenAILLMRepository_Complete(t *testing.T) {
	var received struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1718000000,
			"model": "deepseek-chat",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "VCB"}}]
		}`))
	}))
	defer srv.Close()

	repo := NewOpenAILLMRepository(newOpenAITestConfig(srv.URL+"/v1"), logger.NewNop())

	out, err := repo.Complete(context.Background(), "deepseek-chat", "system prompt", "Tell me about VCB")
	require.NoError(t, err)
	assert.Equal(t, "VCB", out)

	assert.Equal(t, "deepseek-chat", received.Model)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "system prompt", received.Messages[0].Content)
	assert.Equal(t, "user", received.Messages[1].Role)
	assert.Equal(t, "Tell me about VCB", received.Messages[1].Content)
}

func TestOpenAILLMRepository_Complete_ProviderError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	repo := NewOpenAILLMRepository(newOpenAITestConfig(srv.URL+"/v1"), logger.NewNop())

	_, err := repo.Complete(context.Background(), "deepseek-chat", "system", "hi")
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "requests must not be retried")
}
