package quizblade

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/flarexio/quizblade/source"
)

func TestConfigYAMLUnmarshal(t *testing.T) {
	assert := assert.New(t)

	input := `model:
  apiKey: should-be-ignored
  model: gpt-4o-mini
  embeddingModel: text-embedding-3-small
vector:
  collection: magicblock
quiz:
  instruction: Ask one question.`

	var cfg Config
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal("gpt-4o-mini", cfg.Model.Model)
	assert.Equal("text-embedding-3-small", cfg.Model.EmbeddingModel)
	assert.Empty(cfg.Model.APIKey, "api key must not be read from the config file")
	assert.Equal("magicblock", cfg.Vector.Collection)
	assert.Equal("Ask one question.", cfg.instruction())
	assert.Equal(source.DefaultLocation, cfg.location())
}

func TestConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	var cfg Config

	assert.Equal(DefaultInstruction, cfg.instruction())
	assert.Equal(source.DefaultLocation, cfg.location())
}

func TestStateString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("INGESTING", StateIngesting.String())
	assert.Equal("DONE", StateDone.String())
	assert.Equal("FAILED", StateFailed.String())
	assert.True(StateDone.Terminal())
	assert.True(StateFailed.Terminal())
	assert.False(StateGenerating.Terminal())
}

func TestEnvelope(t *testing.T) {
	assert := assert.New(t)

	success := NewEnvelope(fixedQuiz, nil)
	assert.Equal(http.StatusOK, success.StatusCode)
	assert.Equal(CORSHeaders, success.Headers)

	content, err := success.Content()
	assert.NoError(err)
	assert.Equal(fixedQuiz, content)

	failure := NewEnvelope("ignored", errors.New("boom"))
	assert.Equal(http.StatusInternalServerError, failure.StatusCode)
	assert.Equal(CORSHeaders, failure.Headers)
	assert.JSONEq(`{"message": "send meta tx failed."}`, failure.Body)

	_, err = failure.Content()
	assert.ErrorIs(err, ErrRemoteFailure)
	assert.Contains(err.Error(), FailureMessage)
}

func TestParseQuiz(t *testing.T) {
	assert := assert.New(t)

	quiz, err := ParseQuiz("```json\n" + fixedQuiz + "\n```")
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal("Which chain does MagicBlock run rollups on?", quiz.Question)
	assert.Len(quiz.Answers, 4)
	assert.Equal("Solana", quiz.CorrectAnswer)

	_, err = ParseQuiz(`{"question": "q", "answers": {"A": "a", "B": "b", "C": "c", "D": "d"}, "correct_answer": "e"}`)
	assert.ErrorIs(err, ErrInvalidQuiz)

	_, err = ParseQuiz("not json")
	assert.Error(err)
}
