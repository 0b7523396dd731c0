package genai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedContent struct {
	Role  string `json:"role"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

type recordedRequest struct {
	Contents          []recordedContent `json:"contents"`
	SystemInstruction *recordedContent  `json:"systemInstruction"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) service.TextGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gen, err := NewGeminiClient(context.Background(), &config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
		Timeout: time.Second,
	}, server.Client(), newDiscardLogger())
	require.NoError(t, err)

	return gen
}

func replyWith(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
			}},
		})
	}
}

func TestGeminiClient_GenerateText(t *testing.T) {
	var got recordedRequest
	gen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		replyWith("  Grilled chicken salad\n")(w, r)
	})

	text, err := gen.GenerateText(t.Context(), "what should I eat")

	require.NoError(t, err)
	assert.Equal(t, "Grilled chicken salad", text)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "what should I eat", got.Contents[0].Parts[0].Text)
	assert.Nil(t, got.SystemInstruction)
}

func TestGeminiClient_Converse(t *testing.T) {
	var got recordedRequest
	gen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		replyWith("A banana has about 105 kcal.")(w, r)
	})

	text, err := gen.Converse(t.Context(), "You are NutriTrack.", []service.Turn{
		{Role: service.TurnRoleUser, Text: "Hi"},
		{Role: service.TurnRoleAssistant, Text: "Hello! How can I help?"},
		{Role: service.TurnRoleUser, Text: "Calories in a banana?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "A banana has about 105 kcal.", text)

	require.Len(t, got.Contents, 3)
	assert.Equal(t, []string{"user", "model", "user"},
		[]string{got.Contents[0].Role, got.Contents[1].Role, got.Contents[2].Role})
	assert.Equal(t, "Calories in a banana?", got.Contents[2].Parts[0].Text)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "You are NutriTrack.", got.SystemInstruction.Parts[0].Text)
}

func TestGeminiClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "non-2xx", status: http.StatusTooManyRequests, body: `{"error":{"code":429,"message":"quota"}}`},
		{name: "malformed json", status: http.StatusOK, body: `not json`},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, wantErr: ErrEmptyResponse},
		{name: "blank text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, wantErr: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := gen.GenerateText(t.Context(), "prompt")

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewTextGenerator_DisabledWithoutKey(t *testing.T) {
	gen, err := NewTextGenerator(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	_, err = gen.GenerateText(t.Context(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = gen.Converse(t.Context(), "", []service.Turn{{Role: service.TurnRoleUser, Text: "hi"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
