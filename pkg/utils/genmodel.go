package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const modelRequestTimeout = 30 * time.Second

// AttemptConfig is one rung of the structured-generation retry cascade.
// Attempts are tried in order; later ones trade determinism for creativity.
type AttemptConfig struct {
	Label       string
	Temperature float32
	TopP        float32
	TopK        int32
}

// DefaultAttemptConfigs returns the cascade ordered strict to creative.
func DefaultAttemptConfigs() []AttemptConfig {
	return []AttemptConfig{
		{Label: "strict", Temperature: 0.1, TopP: 0.5, TopK: 10},
		{Label: "balanced", Temperature: 0.4, TopP: 0.8, TopK: 20},
		{Label: "creative", Temperature: 0.8, TopP: 0.95, TopK: 40},
	}
}

// StructuredModelClient generates JSON documents from structured prompts.
// Responses are cleaned and syntax-checked here; schema validation belongs
// to the caller.
type StructuredModelClient interface {
	GenerateStructured(ctx context.Context, prompt string, attempt AttemptConfig) (string, error)
	Close() error
}

// GeminiModelClient implements StructuredModelClient on Google's Gemini API.
type GeminiModelClient struct {
	client *genai.Client
	model  string
}

func NewGeminiModelClient(apiKey, model string) (StructuredModelClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModelClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiModelClient) GenerateStructured(ctx context.Context, prompt string, attempt AttemptConfig) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(attempt.Temperature)
	model.SetTopP(attempt.TopP)
	model.SetTopK(attempt.TopK)
	model.SetMaxOutputTokens(4096)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, modelRequestTimeout)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("model returned invalid JSON")
	}
	return content, nil
}

func (c *GeminiModelClient) Close() error {
	return c.client.Close()
}

// OpenAIModelClient implements StructuredModelClient on the chat-completions
// API with the JSON-object response format.
type OpenAIModelClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIModelClient(apiKey, model string) StructuredModelClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIModelClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIModelClient) GenerateStructured(ctx context.Context, prompt string, attempt AttemptConfig) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, modelRequestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: attempt.Temperature,
		TopP:        attempt.TopP,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You convert day-plan descriptions into structured JSON. Return JSON only, no prose.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("model returned invalid JSON")
	}
	return content, nil
}

func (c *OpenAIModelClient) Close() error {
	return nil
}

// NewStructuredModelClient builds a client for the configured provider.
func NewStructuredModelClient(provider, apiKey, model string) (StructuredModelClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIModelClient(apiKey, model), nil
	case "gemini":
		return NewGeminiModelClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown fencing and lead-in prose a model may
// wrap around a JSON document, then trims to the outermost balanced object
// or array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the JSON:",
		"Here is the JSON:",
		"Here's the plan:",
		"Here is the plan:",
		"Result:",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.TrimSpace(response), prefix) {
			response = strings.TrimPrefix(strings.TrimSpace(response), prefix)
			break
		}
	}

	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingBrace(response, objStart); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingBracket(response, arrStart); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func findMatchingBracket(s string, start int) int {
	if start >= len(s) || s[start] != '[' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
