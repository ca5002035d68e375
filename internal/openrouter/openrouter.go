package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"FitCoach_V0.1/internal/config"
	"github.com/rs/zerolog"
)

// --- Chat Completions Request/Response ---

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ErrEmptyContent is returned when a 2xx response carries no message content.
var ErrEmptyContent = errors.New("completion response has no message content")

// StatusError is returned when the completion service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion service returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls an OpenAI-compatible chat completions endpoint.
// Exactly one attempt is made per call.
type Client struct {
	apiKey   string
	url      string
	model    string
	siteURL  string
	siteName string
	http     *http.Client
}

// NewClient builds a Client from cfg. A nil httpClient uses a client without
// its own timeout; callers bound the call through ctx.
func NewClient(cfg *config.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		apiKey:   cfg.OpenRouterAPIKey,
		url:      cfg.CompletionURL,
		model:    cfg.Model,
		siteURL:  cfg.SiteURL,
		siteName: cfg.SiteName,
		http:     httpClient,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
//
// A *StatusError means the service answered with a non-2xx status,
// ErrEmptyContent means it answered without content. Any other error is a
// transport failure.
func (c *Client) Complete(ctx context.Context, logger *zerolog.Logger, prompt string) (string, error) {
	payload := ChatRequest{
		Model:    c.model,
		Messages: []Message{{Role: "user", Content: prompt}},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.siteURL)
	req.Header.Set("X-Title", c.siteName)
	req.Header.Set("Content-Type", "application/json")

	logger.Info().Str("model", c.model).Msg("Calling completion service...")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyContent
	}

	return chatResp.Choices[0].Message.Content, nil
}
