package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/hpungsan/facet/internal/logging"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("text generation returned empty content")

// GenAI is a Service backed by the Gemini API.
type GenAI struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGenAI creates a Gemini-backed service for model.
func NewGenAI(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("genai: API key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("genai: model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAI{
		client: client,
		model:  model,
		logger: logging.OrNop(logger),
	}, nil
}

// Model returns the configured model name.
func (g *GenAI) Model() string {
	return g.model
}

// Generate sends the prompt as a single user turn and returns the response text.
func (g *GenAI) Generate(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("genai: prompt is empty")
	}

	g.logger.Debug("genai request",
		zap.String("model", g.model),
		zap.String("kind", req.ContentKind),
		zap.Int("prompt_chars", len(req.Prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("genai generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}
	return &Response{Content: text}, nil
}
