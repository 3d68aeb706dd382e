package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
}

func TestCompleteReturnsContent(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": "the answer"}},
		},
	})
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "", "test-key", srv.Client())
	got, err := c.Complete(context.Background(), "a question")
	require.NoError(t, err)
	assert.Equal(t, "the answer", got)
}

func TestCompleteFallbackOnEmptyChoices(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"no choices", map[string]any{"choices": []any{}}},
		{"empty content", map[string]any{"choices": []map[string]any{{"message": map[string]string{"content": ""}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.body)
			defer srv.Close()

			c := NewOpenRouterClient(srv.URL, "", "test-key", srv.Client())
			got, err := c.Complete(context.Background(), "a question")
			require.NoError(t, err)
			assert.Equal(t, noResponseFallback, got)
		})
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, map[string]any{"error": "bad key"})
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "", "test-key", srv.Client())
	_, err := c.Complete(context.Background(), "a question")
	assert.Error(t, err)
}

func TestCompleteContextCancellation(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, nil)
	defer srv.Close()

	c := NewOpenRouterClient(srv.URL, "", "test-key", srv.Client())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Complete(ctx, "a question")
	assert.Error(t, err)
}
