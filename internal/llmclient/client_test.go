// internal/llmclient/client_test.go
package llmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/config"
)

func testLLMConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Provider:   "google",
		Model:      "gemini-2.0-flash",
		APIKey:     "test-key",
		Endpoint:   endpoint,
		APITimeout: 5 * time.Second,
		MaxTokens:  256,
	}
}

func successBody(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]string{{"text": text}},
					"role":  "model",
				},
				"finishReason": "STOP",
			},
		},
		"usageMetadata": map[string]int{
			"promptTokenCount":     10,
			"candidatesTokenCount": 20,
			"totalTokenCount":      30,
		},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func TestNewGoogleClient(t *testing.T) {
	t.Run("requires an api key", func(t *testing.T) {
		_, err := NewGoogleClient(config.LLMConfig{Model: "gemini-2.0-flash"}, zap.NewNop())
		require.Error(t, err)
	})

	t.Run("derives the default endpoint from the model", func(t *testing.T) {
		client, err := NewGoogleClient(testLLMConfig(""), zap.NewNop())
		require.NoError(t, err)
		assert.Contains(t, client.endpoint, "gemini-2.0-flash:generateContent")
	})

	t.Run("rate limiter only when configured", func(t *testing.T) {
		client, err := NewGoogleClient(testLLMConfig(""), zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, client.limiter)

		cfg := testLLMConfig("")
		cfg.RequestsPerMinute = 30
		client, err = NewGoogleClient(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, client.limiter)
	})
}

func TestGenerateResponseSuccess(t *testing.T) {
	var gotPayload geminiRequestPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(successBody(`{"ok": true}`)))
	}))
	defer server.Close()

	client, err := NewGoogleClient(testLLMConfig(server.URL), zap.NewNop())
	require.NoError(t, err)

	resp, err := client.GenerateResponse(context.Background(), schemas.GenerationRequest{
		SystemPrompt: "be terse",
		UserPrompt:   "analyze this",
		Options:      schemas.GenerationOptions{Temperature: 0.4, ForceJSONFormat: true},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, resp)

	// The wire payload reflects the request.
	require.Len(t, gotPayload.Contents, 1)
	assert.Equal(t, "analyze this", gotPayload.Contents[0].Parts[0].Text)
	require.NotNil(t, gotPayload.SystemInstruction)
	assert.Equal(t, "be terse", gotPayload.SystemInstruction.Parts[0].Text)
	assert.Equal(t, "application/json", gotPayload.GenerationConfig.ResponseMimeType)
	assert.InDelta(t, 0.4, gotPayload.GenerationConfig.Temperature, 0.001)
}

func TestGenerateResponseRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(successBody("recovered")))
	}))
	defer server.Close()

	client, err := NewGoogleClient(testLLMConfig(server.URL), zap.NewNop())
	require.NoError(t, err)

	resp, err := client.GenerateResponse(context.Background(), schemas.GenerationRequest{UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGenerateResponsePermanentErrors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "bad request is not retried", status: http.StatusBadRequest, body: `{"error": "invalid"}`},
		{name: "unauthorized is not retried", status: http.StatusUnauthorized, body: `{"error": "key"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client, err := NewGoogleClient(testLLMConfig(server.URL), zap.NewNop())
			require.NoError(t, err)

			_, err = client.GenerateResponse(context.Background(), schemas.GenerationRequest{UserPrompt: "hi"})
			require.Error(t, err)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestGenerateResponseSafetyBlock(t *testing.T) {
	body := `{"candidates": [{"content": {"parts": []}, "finishReason": "SAFETY"}]}`
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client, err := NewGoogleClient(testLLMConfig(server.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = client.GenerateResponse(context.Background(), schemas.GenerationRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAFETY")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerateResponseNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client, err := NewGoogleClient(testLLMConfig(server.URL), zap.NewNop())
	require.NoError(t, err)

	_, err = client.GenerateResponse(context.Background(), schemas.GenerationRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
