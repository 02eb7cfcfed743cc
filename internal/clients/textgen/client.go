// Package textgen is the text-generation backend used to draft characters
// and backstories.
package textgen

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_client.go -package=textgenmock github.com/KirkDiggler/rpg-character-forge/internal/clients/textgen Client

// CompleteInput is a single system + user prompt exchange.
type CompleteInput struct {
	System string
	Prompt string
	// JSON asks the backend for a JSON object response.
	JSON        bool
	Temperature *float64
	MaxTokens   int
}

// CompleteOutput carries the raw model text.
type CompleteOutput struct {
	Text  string
	Model string
}

// Client generates text. A client without credentials reports
// Configured() == false and fails every call with FailedPrecondition.
type Client interface {
	Configured() bool
	Model() string
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)
}
