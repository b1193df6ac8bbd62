package generation

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient generates text through the Anthropic messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicClient creates a new Anthropic-backed generation client.
func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  "claude-3-5-haiku-20241022",
	}, nil
}

// Name returns the provider name.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

// Generate sends the prompt as a single user message.
func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (*Result, error) {
	start := time.Now()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(c.model),
		MaxTokens: anthropic.F(int64(1024)),
		Messages: anthropic.F([]anthropic.MessageParam{
			{
				Role: anthropic.F(anthropic.MessageParamRoleUser),
				Content: anthropic.F([]anthropic.MessageParamContentUnion{
					anthropic.TextBlockParam{
						Type: anthropic.F(anthropic.TextBlockParamTypeText),
						Text: anthropic.F(prompt),
					},
				}),
			},
		}),
	})
	if err != nil {
		return nil, &Error{Provider: "anthropic", Err: err}
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			text += block.Text
		}
	}
	if text == "" {
		return nil, &Error{Provider: "anthropic", Err: errors.New("empty completion")}
	}

	return &Result{
		Text:      text,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}
