package analysis

import (
	"context"
	"fmt"

	"smart-notes/pkg/gemini"
)

type geminiCompleter struct {
	client gemini.IGemini
}

// NewGeminiCompleter adapts a Gemini client to the Completer boundary. The
// credential is sent as the per-call API key.
func NewGeminiCompleter(client gemini.IGemini) Completer {
	return &geminiCompleter{client: client}
}

func (c *geminiCompleter) Complete(ctx context.Context, prompt, credential string) (string, error) {
	resp, err := c.client.GenerateContent(ctx, &gemini.Request{
		APIKey: credential,
		Messages: []gemini.Content{
			{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no response received", ErrEmptyResponse)
	}
	if len(resp.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: response has no content", ErrEmptyResponse)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", ErrEmptyResponse)
	}
	return text, nil
}
