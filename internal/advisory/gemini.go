package advisory

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"boutique/internal/config"
	apperrors "boutique/internal/errors"

	"google.golang.org/genai"
)

const geminiProviderName = "gemini"

// GeminiProvider asks a Gemini model for styling advice through the genai SDK.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider builds the SDK client. A nil httpClient gets one bounded
// by cfg.Timeout.
func NewGeminiProvider(ctx context.Context, cfg config.AdvisoryConfig, httpClient *http.Client) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.Endpoint,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}, nil
}

func (p *GeminiProvider) Name() string { return geminiProviderName }

func Prompt(items []string) string {
	return "You are a high-end fashion consultant for a luxury Indo-Western store. " +
		"The customer has selected: " + strings.Join(items, ", ") + ". " +
		"Provide a short, elegant 2-sentence styling advice summary " +
		"(matching shoes, watches, or occasion suitability)."
}

func (p *GeminiProvider) Generate(ctx context.Context, items []string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(Prompt(items)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.temperature),
	})
	if err != nil {
		return "", apperrors.NewAdvisoryProviderError(geminiProviderName, err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
