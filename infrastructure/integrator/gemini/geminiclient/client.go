package geminiclient

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/vfg2006/geo-content-api/internal/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient cria o cliente do SDK do Gemini. O SDK não abre conexão até a primeira chamada.
func NewClient(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.Gemini.APIKey)}, opts...)

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "gemini: failed to create client")
	}

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(2048)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "gemini: failed to generate content")
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("gemini: no content generated")
	}

	return text, nil
}

// Ping lista o primeiro modelo disponível para verificar credencial e conectividade
func (g *GeminiClient) Ping(ctx context.Context) error {
	_, err := g.client.ListModels(ctx).Next()
	if err != nil && err != iterator.Done {
		return errors.Wrap(err, "gemini: failed to list models")
	}
	return nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return strings.TrimSpace(sb.String())
}
