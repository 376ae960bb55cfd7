// Package anthropic implements the llm.Client contract using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resume-builder/internal/llm"
	"resume-builder/internal/resume"
)

const defaultMaxTokens = 4096

// Client calls Anthropic through the official SDK.
type Client struct {
	client anthropicsdk.Client
	model  anthropicsdk.Model
}

// NewClient constructs an Anthropic-backed generation client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	resolved := anthropicsdk.Model(model)
	if strings.TrimSpace(model) == "" {
		resolved = anthropicsdk.ModelClaude3_7SonnetLatest
	}
	return &Client{
		client: anthropicsdk.NewClient(option.WithAPIKey(apiKey)),
		model:  resolved,
	}, nil
}

// GenerateResume drafts a resume document from a bio and profile hints.
func (c *Client) GenerateResume(ctx context.Context, input llm.GenerateResumeInput) (resume.Document, error) {
	system, user := llm.ResumePrompt(input)
	content, err := c.complete(ctx, system, user)
	if err != nil {
		return resume.Document{}, err
	}
	return llm.ParseModelJSON(content)
}

// GenerateCoverLetter drafts cover letter prose.
func (c *Client) GenerateCoverLetter(ctx context.Context, input llm.CoverLetterInput) (string, error) {
	system, user, err := llm.CoverLetterPrompt(input)
	if err != nil {
		return "", err
	}
	content, err := c.complete(ctx, system, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	response, err := c.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     c.model,
		MaxTokens: defaultMaxTokens,
		System: []anthropicsdk.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropicsdk.MessageParam{{
			Role: anthropicsdk.MessageParamRoleUser,
			Content: []anthropicsdk.ContentBlockParamUnion{{
				OfText: &anthropicsdk.TextBlockParam{Text: user},
			}},
		}},
	})
	if err != nil {
		var apierr *anthropicsdk.Error
		if errors.As(err, &apierr) {
			return "", &llm.ServiceError{Status: apierr.StatusCode}
		}
		return "", err
	}

	for _, block := range response.Content {
		text := block.AsText()
		if text.Text != "" {
			return text.Text, nil
		}
	}
	return "", fmt.Errorf("%w: empty response content", llm.ErrParse)
}

var _ llm.Client = (*Client)(nil)
