package nats

import (
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/micro"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert := assert.New(t)

	assert.Error(Error(nil))

	msg := nats.NewMsg("edges.test.quizblade.generate_quiz")
	assert.NoError(Error(msg))

	msg.Header.Set(micro.ErrorCodeHeader, "500")
	msg.Header.Set(micro.ErrorHeader, "invalid response type")
	assert.EqualError(Error(msg), "500:invalid response type")

	msg = nats.NewMsg("edges.test.quizblade.generate_quiz")
	msg.Header.Set(micro.ErrorCodeHeader, "500")
	assert.EqualError(Error(msg), "500:unknown error")
}
