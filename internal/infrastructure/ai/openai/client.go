// Package openai provides the OpenAI-backed drink generator
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/infrastructure/config"
	"github.com/j4rl/barcraft/internal/ports/outbound"
)

// Client implements outbound.DrinkGenerator against the OpenAI Responses API.
type Client struct {
	client *resty.Client
	model  string
	hasKey bool
	logger *zap.Logger
}

// NewClient creates a new OpenAI client. A client built without an API key
// stays constructible but fails every generation with ErrMissingAPIKey.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client: client,
		model:  cfg.Model,
		hasKey: cfg.APIKey != "",
		logger: logger,
	}
}

// drinkSchema constrains the model output to exactly the fields we persist.
// Ingredient amounts stay free text so "top up" and "2 dashes" survive.
var drinkSchema = map[string]interface{}{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"name", "description", "instructions", "quote", "ingredients"},
	"properties": map[string]interface{}{
		"name":         map[string]interface{}{"type": "string"},
		"description":  map[string]interface{}{"type": "string"},
		"instructions": map[string]interface{}{"type": "string"},
		"quote":        map[string]interface{}{"type": "string"},
		"ingredients": map[string]interface{}{
			"type":     "array",
			"minItems": 3,
			"maxItems": 8,
			"items": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"name", "amount"},
				"properties": map[string]interface{}{
					"name":   map[string]interface{}{"type": "string"},
					"amount": map[string]interface{}{"type": "string"},
				},
			},
		},
	},
}

type responsesResult struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// GenerateDrink asks the model for a cocktail matching the prompt.
func (c *Client) GenerateDrink(ctx context.Context, prompt string) (*outbound.GeneratedDrink, error) {
	if !c.hasKey {
		return nil, outbound.ErrMissingAPIKey
	}

	req := map[string]interface{}{
		"model": c.model,
		"input": prompt,
		"text": map[string]interface{}{
			"format": map[string]interface{}{
				"type":   "json_schema",
				"name":   "drink_suggestion",
				"strict": true,
				"schema": drinkSchema,
			},
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/responses")
	if err != nil {
		c.logger.Error("OpenAI request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", outbound.ErrRequestFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error("OpenAI returned an error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return nil, fmt.Errorf("%w: status %d", outbound.ErrRequestFailed, resp.StatusCode())
	}

	var result responsesResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", outbound.ErrInvalidJSON, err)
	}

	text := outputText(result)
	if strings.TrimSpace(text) == "" {
		return nil, outbound.ErrEmptyOutput
	}

	c.logger.Debug("OpenAI generation succeeded",
		zap.Int("input_tokens", result.Usage.InputTokens),
		zap.Int("output_tokens", result.Usage.OutputTokens),
	)

	return parseDrink(text)
}

// outputText concatenates every output_text item of the response.
func outputText(result responsesResult) string {
	var b strings.Builder
	for _, item := range result.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				b.WriteString(content.Text)
			}
		}
	}
	return b.String()
}

// parseDrink decodes the model text into a GeneratedDrink. Some models wrap
// the JSON in prose or code fences, so on a failed decode the outermost brace
// snippet is tried once more before giving up.
func parseDrink(text string) (*outbound.GeneratedDrink, error) {
	var drink outbound.GeneratedDrink
	if err := json.Unmarshal([]byte(text), &drink); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start == -1 || end <= start {
			return nil, fmt.Errorf("%w: %v", outbound.ErrInvalidJSON, err)
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &drink); err != nil {
			return nil, fmt.Errorf("%w: %v", outbound.ErrInvalidJSON, err)
		}
	}

	if strings.TrimSpace(drink.Name) == "" ||
		strings.TrimSpace(drink.Instructions) == "" ||
		len(drink.Ingredients) == 0 {
		return nil, outbound.ErrInvalidShape
	}

	return &drink, nil
}
