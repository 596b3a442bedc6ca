package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"

	"github.com/flarexio/quizblade/prompt"
)

type stubModel struct {
	resp     *llms.ContentResponse
	err      error
	messages []llms.MessageContent
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	return m.resp, m.err
}

func (m *stubModel) Call(ctx context.Context, text string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, text, options...)
}

func TestCompleterReturnsRawText(t *testing.T) {
	assert := assert.New(t)

	raw := "```json\n{\"question\": \"q\"}\n```"

	model := &stubModel{
		resp: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{
				{Content: raw},
			},
		},
	}

	p, err := prompt.NewAssembler().Assemble("context", "instruction")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	text, err := NewCompleter(model).Complete(context.Background(), p)
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(raw, text)
	assert.Len(model.messages, 2)
}

func TestCompleterEmptyChoices(t *testing.T) {
	assert := assert.New(t)

	model := &stubModel{
		resp: &llms.ContentResponse{},
	}

	_, err := NewCompleter(model).Complete(context.Background(), prompt.Prompt{})
	assert.ErrorIs(err, ErrEmptyCompletion)
}

func TestCompleterProviderError(t *testing.T) {
	assert := assert.New(t)

	rateLimited := errors.New("429 too many requests")

	model := &stubModel{err: rateLimited}

	_, err := NewCompleter(model).Complete(context.Background(), prompt.Prompt{})
	assert.ErrorIs(err, rateLimited)
}

func TestOpenAIAdaptersRequireAPIKey(t *testing.T) {
	assert := assert.New(t)

	_, err := NewOpenAIEmbedder(Config{})
	assert.ErrorIs(err, ErrMissingAPIKey)

	_, err = NewOpenAICompleter(Config{})
	assert.ErrorIs(err, ErrMissingAPIKey)
}

func TestOpenAIAdapters(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{
		APIKey:  "sk-test",
		BaseURL: "http://localhost:0/v1",
	}

	embedder, err := NewOpenAIEmbedder(cfg)
	assert.NoError(err)
	assert.NotNil(embedder)

	completer, err := NewOpenAICompleter(cfg)
	assert.NoError(err)
	assert.NotNil(completer)
}
