// Package ai wraps the OpenAI-compatible chat completion API behind the
// small generate surface the chat usecase needs.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"secondbrain/pkg/logger/slogx"
)

const defaultTimeout = 30 * time.Second

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	apiKey string `option:"mandatory" validate:"required"`
	model  string `option:"mandatory" validate:"required"`

	baseURL string
	timeout time.Duration
}

type Client struct {
	Options
	api openai.Client
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate ai client options: %v", err)
	}

	if opts.timeout <= 0 {
		opts.timeout = defaultTimeout
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(opts.apiKey)}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.baseURL))
	}

	return &Client{Options: opts, api: openai.NewClient(clientOpts...)}, nil
}

// Generate runs one chat completion under the configured timeout. Single
// attempt, no retry: a failed generation is surfaced, not masked.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	slogx.Debug(ctx, "chat completion finished",
		slog.String("model", c.model),
		slog.Duration("duration", time.Since(start)),
	)

	if len(completion.Choices) == 0 {
		return "", nil
	}

	return completion.Choices[0].Message.Content, nil
}
