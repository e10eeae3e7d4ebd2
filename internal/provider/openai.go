package provider

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4o

type openAIClient struct {
	client *openai.Client
	model  string
}

// newOpenAI builds an OpenAI chat-completion client. Requires the
// OPENAI_API_KEY environment variable.
func newOpenAI(cfg Config) (Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, &MissingKeyError{Provider: "openai", EnvVar: "OPENAI_API_KEY"}
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &openAIClient{client: openai.NewClient(apiKey), model: model}, nil
}

func (c *openAIClient) Name() string { return "openai" }

func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", wrapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Provider: "openai", Err: errors.New("empty response: no choices returned")}
	}
	return resp.Choices[0].Message.Content, nil
}

func wrapOpenAIError(err error) error {
	transient := false
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		transient = apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	return &Error{Provider: "openai", Err: err, Transient: transient}
}
