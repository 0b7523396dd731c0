// Package genai talks to the hosted Gemini model used for food recommendations and the nutrition chat.
package genai

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	gemini "google.golang.org/genai"
)

const (
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 10 * time.Second
)

var (
	// ErrNotConfigured is returned by the disabled generator.
	ErrNotConfigured = errors.New("text generation is not configured")
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("text generation returned no candidates")
)

type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type geminiClient struct {
	models *gemini.Models
	model  string
	logger *slog.Logger
}

// NewTextGenerator returns the Gemini client, or a generator that always fails when no API key is set.
func NewTextGenerator(params Params) (service.TextGenerator, error) {
	cfg := params.Config.Gemini
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("Gemini not configured, recommendations and chat replies are disabled")

		return disabledGenerator{}, nil
	}

	return NewGeminiClient(params.Ctx, cfg, nil, params.Logger)
}

// NewGeminiClient builds an API-key client for the configured model. A nil httpClient uses the SDK default.
func NewGeminiClient(
	ctx context.Context,
	cfg *config.GeminiConfig,
	httpClient *http.Client,
	logger *slog.Logger,
) (service.TextGenerator, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := gemini.NewClient(ctx, &gemini.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    gemini.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: gemini.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Timeout: &timeout,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &geminiClient{
		models: client.Models,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateText sends a single-turn prompt and returns the first candidate's text.
func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, gemini.Text(prompt), nil)
}

// Converse replays turns as user and model contents with instruction as the system instruction.
func (c *geminiClient) Converse(ctx context.Context, instruction string, turns []service.Turn) (string, error) {
	contents := make([]*gemini.Content, 0, len(turns))
	for _, turn := range turns {
		role := gemini.Role(gemini.RoleUser)
		if turn.Role == service.TurnRoleAssistant {
			role = gemini.RoleModel
		}
		contents = append(contents, gemini.NewContentFromText(turn.Text, role))
	}

	var genConfig *gemini.GenerateContentConfig
	if instruction != "" {
		genConfig = &gemini.GenerateContentConfig{
			SystemInstruction: gemini.NewContentFromText(instruction, gemini.RoleUser),
		}
	}

	return c.generate(ctx, contents, genConfig)
}

func (c *geminiClient) generate(
	ctx context.Context,
	contents []*gemini.Content,
	genConfig *gemini.GenerateContentConfig,
) (string, error) {
	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, genConfig)
	c.logger.DebugContext(ctx, "Gemini call finished",
		slog.Int("turns", len(contents)),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("ok", err == nil),
	)
	if err != nil {
		return "", errors.Wrap(err, "gemini request failed")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

type disabledGenerator struct{}

func (disabledGenerator) GenerateText(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledGenerator) Converse(context.Context, string, []service.Turn) (string, error) {
	return "", ErrNotConfigured
}
