package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/sashabaranov/go-openai"
)

// Client represents an OpenAI API client
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// ItemInput is one pantry item parsed out of free text
type ItemInput struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	ExpiresInDays int     `json:"expires_in_days,omitempty"`
}

// New creates a new OpenAI client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	client := openai.NewClientWithConfig(config)
	return &Client{
		client: client,
		model:  model,
		logger: logger.New("openai"),
	}
}

// GetRecipeInfo retrieves a structured recipe for a dish name from the LLM
func (c *Client) GetRecipeInfo(dishName string) (*models.Recipe, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
You are a cooking expert. Please provide a complete recipe for the dish "%s".
Return the information in the following JSON format:
{
  "name": "Full dish name",
  "cuisine": "Cuisine type",
  "ingredients": [{"name": "ingredient", "quantity": 2, "unit": "cups"}, ...],
  "instructions": ["step1", "step2", ...],
  "prep_minutes": 15,
  "cook_minutes": 30,
  "difficulty": "easy|medium|hard",
  "meal_types": ["dinner"],
  "dietary_tags": ["vegetarian"]
}
Only return the JSON, no other text.
`, dishName)

	c.logger.Info("Requesting recipe info for %s", dishName)
	c.logger.Debug("OpenAI prompt (first 100 chars): %s", truncateString(prompt, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a cooking expert who provides accurate information about dishes and recipes.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	var recipe models.Recipe
	if err := json.Unmarshal([]byte(content), &recipe); err != nil {
		c.logger.Error("Failed to parse recipe response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	if recipe.Name == "" {
		recipe.Name = dishName
	}

	c.logger.Info("Successfully got recipe for: %s (%d ingredients)", recipe.Name, len(recipe.Ingredients))
	return &recipe, nil
}

// ParsePantryItemsFromText extracts pantry items with quantities and
// expiry hints from a free-text message
func (c *Client) ParsePantryItemsFromText(text string) ([]ItemInput, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
Extract the food items from the following message. For each item include the
quantity and unit when stated, and "expires_in_days" when the message hints at
shelf life (e.g. "expires friday", "use within a week").
Return a JSON array like:
[{"name": "tomatoes", "quantity": 3, "unit": "", "expires_in_days": 5}, ...]
Only return the JSON array, no other text.

Message:
%s
`, text)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You extract structured grocery data from informal text.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.1,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var items []ItemInput
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		c.logger.Error("Failed to parse items response: %v, Content: %s", err, content)
		// Fall back to a plain-text heuristic
		for _, name := range extractItemNamesFromText(content) {
			items = append(items, ItemInput{Name: name})
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
		}
	}

	c.logger.Info("Parsed %d pantry items from text", len(items))
	return items, nil
}

// GenerateChatMessage generates a chat message for a specific intent
func (c *Client) GenerateChatMessage(intent string, contextData map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal context: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a friendly cooking assistant bot for a Telegram chat. Generate a short, engaging message for the following intent: "%s".
Use the context provided below to personalize the message. Keep it concise and mobile-friendly.
Add appropriate emojis for fun and readability.

Context:
%s

Return only the message text, no explanations or other text.
`, intent, string(contextJSON))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.8,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// truncateString shortens a string for debug logging
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// cleanJSONResponse strips markdown code fences the model sometimes wraps
// around JSON output
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence and optional language tag
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}

		if strings.HasSuffix(s, "```") {
			s = s[:len(s)-3]
		}

		s = strings.TrimSpace(s)
	}

	return s
}

// extractItemNamesFromText extracts item names from text using a simple
// heuristic. This is a fallback method when JSON parsing fails.
func extractItemNamesFromText(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '"' || r == '[' || r == ']' || r == '\t'
	})

	var names []string
	for _, word := range words {
		word = strings.TrimSpace(word)
		if len(word) <= 1 {
			continue
		}
		if word == "null" || word == "true" || word == "false" {
			continue
		}
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}

		names = append(names, word)
	}

	return names
}
