package nats

import (
	"github.com/nats-io/nats.go/micro"

	"github.com/flarexio/quizblade"
)

func AddEndpoints(group micro.Group, endpoints quizblade.EndpointSet) {
	group.AddEndpoint("generate_quiz", GenerateQuizHandler(endpoints.GenerateQuiz))
}
