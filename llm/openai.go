package llm

import (
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

func newOpenAI(cfg Config) (*openai.LLM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	embeddingModel := cfg.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}

	opts := []openai.Option{
		openai.WithToken(strings.TrimPrefix(cfg.APIKey, "Bearer ")),
		openai.WithModel(model),
		openai.WithEmbeddingModel(embeddingModel),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	return openai.New(opts...)
}

// NewOpenAIEmbedder returns an embedder backed by the OpenAI embeddings API.
func NewOpenAIEmbedder(cfg Config) (*embeddings.EmbedderImpl, error) {
	llm, err := newOpenAI(cfg)
	if err != nil {
		return nil, err
	}

	return embeddings.NewEmbedder(llm)
}

// NewOpenAICompleter returns a completer backed by the OpenAI chat API.
func NewOpenAICompleter(cfg Config) (Completer, error) {
	llm, err := newOpenAI(cfg)
	if err != nil {
		return nil, err
	}

	return NewCompleter(llm), nil
}
