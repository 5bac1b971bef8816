package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TripStop is the minimal view of a route entry the narrator needs.
type TripStop struct {
	ID          string
	Name        string
	Description string
	City        string
}

// NarratorClientInterface produces a short JSON trip narration
// ({"trip_name": ..., "description": ...}) for an ordered route.
type NarratorClientInterface interface {
	NarrateTrip(ctx context.Context, stops []TripStop, personality, duration string) (string, error)
}

// GeminiNarratorClient implements NarratorClientInterface using Google's Gemini models
type GeminiNarratorClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarratorClient(apiKey, model string) (NarratorClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarratorClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiNarratorClient) NarrateTrip(ctx context.Context, stops []TripStop, personality, duration string) (string, error) {
	if len(stops) == 0 {
		return "", fmt.Errorf("no stops")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only so callers can unmarshal directly.
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.3)

	resp, err := m.GenerateContent(ctx, genai.Text(buildNarratePrompt(stops, personality, duration)))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}

func buildNarratePrompt(stops []TripStop, personality, duration string) string {
	var stopBuf strings.Builder
	for _, s := range stops {
		fmt.Fprintf(&stopBuf, "- ID:%s | Name:%s | City:%s | Description:%s\n", s.ID, s.Name, s.City, s.Description)
	}

	return fmt.Sprintf(`
Act as a travel guide for Thailand. The traveller has personality %q and trip duration %q.
Their route, in visiting order:
%s
Return **JSON only** matching exactly:
{"trip_name": "string", "description": "string"}
The trip_name is a short catchy title, the description a 2-3 sentence overview of the route.
`, personality, duration, stopBuf.String())
}
