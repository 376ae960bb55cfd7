// Package gateway implements the llm.Client contract against an
// OpenAI-compatible chat-completions endpoint.
package gateway

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

	"resume-builder/internal/llm"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/telemetry"
)

const defaultTimeout = 120 * time.Second

// Client calls the generation gateway over plain HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a gateway client. baseURL is the full chat-completions
// endpoint URL.
func NewClient(baseURL, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("GATEWAY_URL is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GATEWAY_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
}

// GenerateResume drafts a resume document from a bio and profile hints.
func (c *Client) GenerateResume(ctx context.Context, input llm.GenerateResumeInput) (resume.Document, error) {
	system, user := llm.ResumePrompt(input)
	content, err := c.complete(ctx, "generate_resume", system, user)
	if err != nil {
		return resume.Document{}, err
	}
	return llm.ParseModelJSON(content)
}

// GenerateCoverLetter drafts cover letter prose; the response is returned
// verbatim beyond trimming.
func (c *Client) GenerateCoverLetter(ctx context.Context, input llm.CoverLetterInput) (string, error) {
	system, user, err := llm.CoverLetterPrompt(input)
	if err != nil {
		return "", err
	}
	content, err := c.complete(ctx, "generate_cover_letter", system, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *Client) complete(ctx context.Context, op, system, user string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("gateway request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		telemetry.Error("llm.rejected", map[string]any{
			"operation": op,
			"status":    resp.StatusCode,
			"model":     c.model,
		})
		return "", &llm.ServiceError{Status: resp.StatusCode}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: invalid gateway response: %v", llm.ErrParse, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: gateway response missing choices", llm.ErrParse)
	}
	content := parsed.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: gateway response empty content", llm.ErrParse)
	}

	fields := map[string]any{"operation": op, "model": c.model}
	if parsed.Usage != nil {
		fields["prompt_tokens"] = parsed.Usage.PromptTokens
		fields["completion_tokens"] = parsed.Usage.CompletionTokens
		fields["total_tokens"] = parsed.Usage.TotalTokens
	}
	telemetry.Info("llm.response", fields)

	return content, nil
}

var _ llm.Client = (*Client)(nil)
