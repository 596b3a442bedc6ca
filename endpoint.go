package quizblade

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"go.uber.org/zap"
)

type EndpointSet struct {
	GenerateQuiz endpoint.Endpoint
}

// GenerateQuizEndpoint is the top-level failure boundary: every error,
// including a panic inside the pipeline, becomes the failure envelope.
// The endpoint itself never returns an error.
func GenerateQuizEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error(ErrUnexpected.Error(),
					zap.String("action", "generate_quiz"),
					zap.String("panic", fmt.Sprint(r)),
				)

				response = NewFailureEnvelope()
				err = nil
			}
		}()

		content, err := svc.GenerateQuiz(ctx)
		return NewEnvelope(content, err), nil
	}
}
