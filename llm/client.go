// Package llm wraps the chat-completion call that turns worksheet prompts
// into decision options, and parses what comes back.
package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/casve-tools/decision-api/domain"
)

// Sampling parameters are fixed, not user-configurable per request.
const (
	temperature = 0.7
	maxTokens   = 2000
)

// Result is the normalized outcome of one successful generation call.
type Result struct {
	Content string
	Model   string
	Usage   domain.TokenUsage
}

// Generator produces decision options from a system instruction and a user
// prompt. Handlers depend on this interface so tests can substitute a stub.
type Generator interface {
	GenerateOptions(ctx context.Context, systemPrompt, userPrompt string) (*Result, error)
}

// Client calls an OpenAI-compatible chat-completion endpoint.
type Client struct {
	client *openai.Client
	model  string
	log    *zap.SugaredLogger
}

var _ Generator = (*Client)(nil)

// NewClient creates a generation client. baseURL may be empty to use the
// provider default.
func NewClient(apiKey, model, baseURL string, log *zap.SugaredLogger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log,
	}
}

// GenerateOptions performs exactly one chat-completion call. Any transport or
// provider failure is returned as an error; there are no retries and no
// timeout beyond the transport default.
func (c *Client) GenerateOptions(ctx context.Context, systemPrompt, userPrompt string) (*Result, error) {
	c.log.Infow("sending request to openai", "model", c.model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("llm returned no choices")
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}
	result := &Result{
		Content: resp.Choices[0].Message.Content,
		Model:   model,
		Usage: domain.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	c.log.Infow("openai response received", "total_tokens", result.Usage.TotalTokens)
	return result, nil
}
