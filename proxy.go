package quizblade

import (
	"context"
	"errors"
)

func ProxyMiddleware(endpoints *EndpointSet) ServiceMiddleware {
	return func(next Service) Service {
		return &proxyMiddleware{
			endpoints: endpoints,
		}
	}
}

type proxyMiddleware struct {
	endpoints *EndpointSet
}

func (mw *proxyMiddleware) GenerateQuiz(ctx context.Context) (string, error) {
	resp, err := mw.endpoints.GenerateQuiz(ctx, nil)
	if err != nil {
		return "", err
	}

	envelope, ok := resp.(Envelope)
	if !ok {
		return "", errors.New("invalid response type")
	}

	return envelope.Content()
}
