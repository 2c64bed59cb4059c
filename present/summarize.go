package present

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const digestPrompt = "Summarize today's news in three short sentences based only on these headlines:\n"

// CohereSummarizer writes a daily digest with the Cohere chat API
type CohereSummarizer struct {
	client *cohereclient.Client
	model  string
}

// NewCohereSummarizer creates a summarizer using the given API key and model
func NewCohereSummarizer(apiKey, model string) *CohereSummarizer {
	if model == "" {
		model = "command-r"
	}
	client := cohereclient.NewClient(cohereclient.WithToken(apiKey))
	return &CohereSummarizer{client: client, model: model}
}

// Summarize returns a short digest of the headlines
func (c *CohereSummarizer) Summarize(ctx context.Context, headlines []string) (string, error) {
	if len(headlines) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	model := c.model
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: digestPrompt + "- " + strings.Join(headlines, "\n- "),
		Model:   &model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil {
		return "", errors.New("cohere chat returned empty response")
	}
	return resp.Text, nil
}
