// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/content-engine/pkg/types"
)

// GroqClient implements Client against Groq's OpenAI-compatible chat
// completions endpoint using the official openai-go SDK.
type GroqClient struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewGroqClient builds a client from resolved configuration. The credential
// must already have been checked; an empty key is still rejected here.
func NewGroqClient(cfg types.GatewayConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, errors.New("gateway model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GroqClient{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(baseURL),
		),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Complete sends one prompt as a single user message and returns the text of
// the first choice.
func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.temperature),
		MaxTokens:   openai.Int(int64(g.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("calling Groq API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
