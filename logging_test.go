package quizblade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type staticService struct {
	content string
	err     error
}

func (svc *staticService) GenerateQuiz(ctx context.Context) (string, error) {
	return svc.content, svc.err
}

func TestLoggingMiddlewareTraceMarkers(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zapcore.InfoLevel)

	svc := LoggingMiddleware(zap.New(core))(&staticService{content: fixedQuiz})

	content, err := svc.GenerateQuiz(context.Background())
	assert.NoError(err)
	assert.Equal(fixedQuiz, content)

	assert.Equal(1, logs.FilterMessageSnippet("[START]").Len())
	assert.Equal(1, logs.FilterMessageSnippet("[END]").Len())
	assert.Equal(1, logs.FilterMessage("quiz generated").Len())
}

func TestLoggingMiddlewareFailure(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zapcore.InfoLevel)

	cause := errors.New("source fetch failed: object not found")
	svc := LoggingMiddleware(zap.New(core))(&staticService{err: cause})

	_, err := svc.GenerateQuiz(context.Background())
	assert.ErrorIs(err, cause)

	assert.Equal(1, logs.FilterMessageSnippet("[END]").Len())
	assert.Equal(1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
