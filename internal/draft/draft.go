// Package draft asks an OpenAI-compatible chat-completions endpoint to write
// the body of a notice.
package draft

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

	"noticegen/internal/config"
	"noticegen/internal/notice"
	"noticegen/internal/secrets"
)

const (
	systemPrompt = "당신은 아파트 공지문 본문을 작성하는 도우미입니다."
	maxTokens    = 800
	temperature  = 0.2

	// errBodyLimit caps how much of an upstream error body ends up in the error.
	errBodyLimit = 512
)

var (
	ErrNoAPIKey    = errors.New("draft: no API key configured")
	ErrEmptyPrompt = errors.New("draft: prompt is empty")
	ErrNoContent   = errors.New("draft: upstream returned no content")
)

// Client drafts notice bodies. The zero HTTP client and limiter are valid.
type Client struct {
	Endpoint string
	Model    string
	APIKey   string
	HTTP     *http.Client
	Limiter  *HostLimiter
}

// NewClient builds a client from the draft section of cfg. The API key is
// looked up through the secrets package.
func NewClient(cfg config.Config) (*Client, error) {
	key, err := secrets.GetAPIKey()
	if errors.Is(err, secrets.ErrNotFound) {
		return nil, ErrNoAPIKey
	}
	if err != nil {
		return nil, fmt.Errorf("draft: read API key: %w", err)
	}
	timeout := cfg.DraftTimeout()
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Client{
		Endpoint: cfg.Draft.Endpoint,
		Model:    cfg.Draft.Model,
		APIKey:   key,
		HTTP:     &http.Client{Timeout: timeout},
		Limiter:  NewHostLimiter(cfg.Draft.RequestsPerMinute, cfg.Draft.Burst),
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Draft returns the drafted body as normalized lines.
func (c *Client) Draft(ctx context.Context, prompt string) ([]string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if c.Limiter != nil {
		if err := c.Limiter.WaitURL(ctx, c.Endpoint); err != nil {
			return nil, fmt.Errorf("draft: %w", err)
		}
	}

	payload, err := json.Marshal(completionRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("draft: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("draft: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return nil, fmt.Errorf("draft: upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("draft: decode response: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return nil, ErrNoContent
	}
	return notice.NormalizeBody(strings.TrimSpace(out.Choices[0].Message.Content)), nil
}
