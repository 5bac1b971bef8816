package suggest_fx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"wander/internal/services"
	"wander/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideNarratorClient,
	ProvideSuggestService,
)

// NarratorConfig holds configuration for trip narration clients
type NarratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideNarratorClient creates a narrator client based on environment variables
func ProvideNarratorClient() (utils.NarratorClientInterface, error) {
	config := getNarratorConfig()

	log.Printf("Initializing %s narrator client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAINarratorClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiNarratorClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported narrator provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideSuggestService(narrator utils.NarratorClientInterface) services.SuggestServiceInterface {
	return services.NewSuggestService(narrator)
}

// getNarratorConfig reads configuration from environment variables
func getNarratorConfig() NarratorConfig {
	provider := getEnvWithDefault("SUGGEST_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return NarratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
