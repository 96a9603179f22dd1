package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/microstock-labs/stockmeta/internal/providers"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini
type Gemini struct{}

// New returns a new Gemini provider
func New() *Gemini {
	return &Gemini{}
}

// GenerateContent sends one image+instruction request to Gemini and
// returns the response text. Overload, invalid-request and empty-content
// failures map to the providers sentinels so callers can pick a retry
// strategy per kind.
func (g *Gemini) GenerateContent(ctx context.Context, req providers.Request) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(req.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(req.Model)

	format := strings.TrimPrefix(req.MimeType, "image/")
	var parts []genai.Part
	if req.PromptFirst {
		parts = []genai.Part{genai.Text(req.Prompt), genai.ImageData(format, req.Image)}
	} else {
		parts = []genai.Part{genai.ImageData(format, req.Image), genai.Text(req.Prompt)}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini: %w", providers.ErrEmptyContent)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini: %w", providers.ErrEmptyContent)
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini: %w", providers.ErrEmptyContent)
}

// classify maps API status codes onto the providers error kinds; other
// failures (connection resets, timeouts) pass through as-is.
func classify(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("failed to generate content: %w", err)
	}

	switch apiErr.Code {
	case 503, 429:
		return fmt.Errorf("gemini returned status %d: %s: %w", apiErr.Code, apiErr.Message, providers.ErrOverloaded)
	case 400:
		return fmt.Errorf("gemini returned status %d: %s: %w", apiErr.Code, apiErr.Message, providers.ErrInvalidRequest)
	default:
		return fmt.Errorf("gemini returned status %d: %s", apiErr.Code, apiErr.Message)
	}
}
