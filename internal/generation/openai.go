package generation

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient generates text through the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI-backed generation client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  "gpt-4o-mini",
	}, nil
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Generate sends the prompt as a single user message.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (*Result, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, &Error{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &Error{Provider: "openai", Err: errors.New("empty completion")}
	}

	return &Result{
		Text:      resp.Choices[0].Message.Content,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}
