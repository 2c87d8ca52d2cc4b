package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Client wraps Gemini text generation for the extraction and planning stages.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey string, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{client: client, model: modelName}, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	contents := genai.Text(prompt)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}
