package nats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/micro"

	"github.com/flarexio/quizblade"
)

// RequestTimeout bounds a remote quiz run when the caller sets no deadline.
const RequestTimeout = 60 * time.Second

func MakeEndpoints(nc *nats.Conn, prefix string) *quizblade.EndpointSet {
	return &quizblade.EndpointSet{
		GenerateQuiz: GenerateQuizEndpoint(nc, prefix+".generate_quiz"),
	}
}

func GenerateQuizEndpoint(nc *nats.Conn, topic string) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, RequestTimeout)
			defer cancel()
		}

		msg := nats.NewMsg(topic)

		resp, err := nc.RequestMsgWithContext(ctx, msg)
		if err != nil {
			return nil, err
		}

		if err := Error(resp); err != nil {
			return nil, err
		}

		var envelope quizblade.Envelope
		if err := json.Unmarshal(resp.Data, &envelope); err != nil {
			return nil, err
		}

		return envelope, nil
	}
}

func Error(msg *nats.Msg) error {
	if msg == nil {
		return errors.New("nil message")
	}

	code := msg.Header.Get(micro.ErrorCodeHeader)
	if code == "" {
		return nil
	}

	description := msg.Header.Get(micro.ErrorHeader)
	if description == "" {
		description = "unknown error"
	}

	return errors.New(code + ":" + description)
}
