package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const viviProviderName = "vivi"

// HTTPClient talks to the hosted ViVi generation endpoint: POST with a JSON
// body {"prompt": ...}, JSON response carrying the generated text.
type HTTPClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the hosted generation endpoint.
func NewHTTPClient(endpoint, apiKey string) (*HTTPClient, error) {
	if endpoint == "" {
		return nil, errors.New("generation endpoint URL is required")
	}

	return &HTTPClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Name returns the provider name.
func (c *HTTPClient) Name() string {
	return viviProviderName
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// generateResponse accepts both response conventions seen in the wild. The
// canonical field is "text"; "result" is legacy and normalized away here so
// callers only ever see Result.Text.
type generateResponse struct {
	Text   string `json:"text"`
	Result string `json:"result"`
}

// Generate sends the prompt and returns the generated text unchanged. Any
// transport failure, non-2xx status, or response without a text field yields
// an *Error.
func (c *HTTPClient) Generate(ctx context.Context, prompt string) (*Result, error) {
	start := time.Now()

	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return nil, &Error{Provider: viviProviderName, Err: fmt.Errorf("encoding request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Provider: viviProviderName, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Provider: viviProviderName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the error message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &Error{
			Provider:   viviProviderName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(snippet))),
		}
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, &Error{Provider: viviProviderName, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}

	text := gr.Text
	if text == "" {
		text = gr.Result
	}
	if text == "" {
		return nil, &Error{Provider: viviProviderName, StatusCode: resp.StatusCode, Err: errors.New("response missing text field")}
	}

	return &Result{
		Text:      text,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}
