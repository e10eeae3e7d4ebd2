package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type geminiClient struct {
	client *genai.Client
	model  string
}

// newGemini builds a Gemini client. Requires GEMINI_API_KEY (or the older
// GOOGLE_API_KEY) in the environment.
func newGemini(cfg Config) (Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, &MissingKeyError{Provider: "gemini", EnvVar: "GEMINI_API_KEY"}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) Name() string { return "gemini" }

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", wrapGeminiError(err)
	}
	text := result.Text()
	if text == "" {
		return "", &Error{Provider: "gemini", Err: errors.New("empty response: no candidate text")}
	}
	return text, nil
}

func wrapGeminiError(err error) error {
	transient := false
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		transient = apiErr.Code == 429 || apiErr.Code >= 500
	}
	return &Error{Provider: "gemini", Err: err, Transient: transient}
}
