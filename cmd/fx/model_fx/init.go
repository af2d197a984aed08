package model_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"dayplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideModelClient,
	ProvideAttemptConfigs)

// ModelConfig holds configuration for the generative model client
type ModelConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideModelClient creates a model client based on environment variables.
// Missing credentials or provider "none" yield a nil client, which keeps
// the deterministic parser as the only interpretation path. The client is
// closed when the app stops.
func ProvideModelClient(lc fx.Lifecycle) utils.StructuredModelClient {
	config := getModelConfig()

	if config.Provider == "none" || config.APIKey == "" {
		log.Println("no generative model configured, using deterministic parser only")
		return nil
	}

	client, err := utils.NewStructuredModelClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		log.Printf("model client init failed (%v), using deterministic parser only", err)
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	log.Printf("Initialized %s model client with model: %s", config.Provider, config.Model)
	return client
}

// ProvideAttemptConfigs exposes the retry cascade, strict to creative.
func ProvideAttemptConfigs() []utils.AttemptConfig {
	return utils.DefaultAttemptConfigs()
}

// getModelConfig reads configuration from environment variables
func getModelConfig() ModelConfig {
	provider := strings.ToLower(getEnvWithDefault("MODEL_PROVIDER", "gemini"))

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("MODEL_NAME", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("MODEL_NAME", "gemini-1.5-flash")
	}

	return ModelConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
