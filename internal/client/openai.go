package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"recipe-pantry-api/internal/model"
)

// Suggester defines the interface for LLM-backed recipe suggestions.
type Suggester interface {
	// SuggestRecipes proposes recipes cookable mostly from the given
	// available ingredients.
	SuggestRecipes(ctx context.Context, available []string, cuisine string, count int) ([]model.RecipeSuggestion, error)
}

var _ Suggester = (*OpenAIClient)(nil)

// OpenAIClient talks to an OpenAI-compatible chat completion API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewOpenAIClient creates a suggestion client. baseURL may be empty to
// use the public OpenAI endpoint; requestsPerMinute caps outgoing calls.
func NewOpenAIClient(apiKey, baseURL, chatModel string, requestsPerMinute float64, logger *slog.Logger) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	if requestsPerMinute <= 0 {
		requestsPerMinute = 20
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(config),
		model:   chatModel,
		limiter: rate.NewLimiter(rate.Limit(requestsPerMinute/60.0), 1),
		logger:  logger,
	}
}

// SuggestRecipes asks the model for recipe ideas built from the user's
// available ingredients. The response must be a bare JSON array; any
// markdown fencing the model adds is stripped before decoding.
func (c *OpenAIClient) SuggestRecipes(ctx context.Context, available []string, cuisine string, count int) ([]model.RecipeSuggestion, error) {
	if count <= 0 {
		count = 3
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Suggest %d recipes that can be cooked mostly from these ingredients: %s.\n",
		count, strings.Join(available, ", "))
	if cuisine != "" {
		fmt.Fprintf(&sb, "Prefer %s cuisine.\n", cuisine)
	}
	sb.WriteString(`Return ONLY a JSON array, no other text, where each element has this shape:
{
  "name": "Dish name",
  "cuisine": "Cuisine type",
  "ingredients": ["2 cups flour", "1 onion", ...],
  "instructions": ["step1", "step2", ...],
  "description": "One-sentence description"
}
Ingredient entries must be complete recipe lines with quantities.`)

	c.logger.Debug("requesting recipe suggestions",
		"available_count", len(available),
		"cuisine", cuisine,
		"count", count,
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a cooking expert who suggests realistic recipes from available ingredients.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: sb.String(),
			},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var suggestions []model.RecipeSuggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		c.logger.Error("failed to decode suggestion response", "error", err)
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	return suggestions, nil
}

// cleanJSONResponse strips markdown code fences some models wrap
// around JSON output.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			content = content[i+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}
