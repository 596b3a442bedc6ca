package llm

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"

	"github.com/flarexio/quizblade/prompt"
)

var (
	ErrMissingAPIKey   = errors.New("missing API key")
	ErrEmptyCompletion = errors.New("empty completion")
)

const (
	DefaultModel          = "gpt-3.5-turbo"
	DefaultEmbeddingModel = "text-embedding-ada-002"
)

// Config is constructed once at startup and passed to the provider
// adapters. The API key never comes from a config file.
type Config struct {
	APIKey         string `yaml:"-"`
	BaseURL        string `yaml:"baseURL"`
	Model          string `yaml:"model"`
	EmbeddingModel string `yaml:"embeddingModel"`
}

func (cfg Config) Validate() error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}

	return nil
}

// Completer generates text for an assembled prompt.
type Completer interface {
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
}

func NewCompleter(model llms.Model, opts ...llms.CallOption) Completer {
	return &completer{model, opts}
}

type completer struct {
	model llms.Model
	opts  []llms.CallOption
}

func (c *completer) Complete(ctx context.Context, p prompt.Prompt) (string, error) {
	resp, err := c.model.GenerateContent(ctx, p.MessageContents(), c.opts...)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Content, nil
}
