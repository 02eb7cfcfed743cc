package textgen

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

// Defaults for the OpenAI backend
const (
	DefaultModel   = "gpt-4-turbo"
	DefaultTimeout = 60 * time.Second
)

// Config holds the OpenAI client configuration. An empty APIKey yields a
// disabled client rather than an error.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	HTTPClient *http.Client
}

type openAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates a Client backed by the OpenAI chat completions
// API.
func NewOpenAIClient(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if cfg.APIKey == "" {
		slog.Info("text generation disabled: no API key configured")
		return &openAIClient{model: model, timeout: timeout}, nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(timeout),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	client := openai.NewClient(opts...)
	return &openAIClient{
		client:  &client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *openAIClient) Configured() bool {
	return c.client != nil
}

func (c *openAIClient) Model() string {
	return c.model
}

func (c *openAIClient) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if !c.Configured() {
		return nil, errors.FailedPrecondition("text generation is not configured")
	}
	if input == nil || input.Prompt == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{},
	}
	if input.System != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(input.System))
	}
	params.Messages = append(params.Messages, openai.UserMessage(input.Prompt))
	if input.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	if input.Temperature != nil {
		params.Temperature = openai.Float(*input.Temperature)
	}
	if input.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(input.MaxTokens))
	}

	start := time.Now()
	res, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		slog.Warn("text generation failed",
			"model", c.model,
			"elapsed", time.Since(start),
			"error", err)
		return nil, convertError(err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return nil, errors.Unavailable("text generation returned no content")
	}

	slog.Debug("text generation complete",
		"model", res.Model,
		"elapsed", time.Since(start),
		"finish_reason", res.Choices[0].FinishReason)

	return &CompleteOutput{
		Text:  res.Choices[0].Message.Content,
		Model: res.Model,
	}, nil
}

// convertError maps SDK failures onto our codes. Every upstream failure is
// reported to the caller; nothing is retried here.
func convertError(err error) error {
	var apiErr *openai.Error
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "text generation credentials rejected")
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return errors.WrapWithCode(err, errors.CodeResourceExhausted, "text generation rate limited")
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "text generation rejected the request")
		default:
			return errors.WrapWithCode(err, errors.CodeUnavailable, "text generation unavailable")
		}
	}

	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, "text generation interrupted")
	}

	return errors.WrapWithCode(err, errors.CodeUnavailable, "text generation unavailable")
}
