package quizblade

import (
	"context"

	"go.uber.org/zap"

	"github.com/flarexio/quizblade/source"
)

// Service defines the core logic of QuizBlade.
type Service interface {

	// GenerateQuiz produces one multiple-choice quiz grounded in the
	// reference document and returns the raw model output.
	GenerateQuiz(ctx context.Context) (string, error)
}

type ServiceMiddleware func(Service) Service

func NewService(cfg Config, pipeline *Pipeline) Service {
	log := zap.L().With(
		zap.String("service", "quizblade"),
	)

	return &service{
		pipeline:    pipeline,
		location:    cfg.location(),
		instruction: cfg.instruction(),
		log:         log,
	}
}

type service struct {
	pipeline    *Pipeline
	location    source.Location
	instruction string
	log         *zap.Logger
}

func (svc *service) GenerateQuiz(ctx context.Context) (string, error) {
	result := svc.pipeline.Run(ctx, svc.location, svc.instruction)
	if result.State != StateDone {
		svc.log.Debug("pipeline failed",
			zap.Stringer("failed_at", result.FailedAt),
		)

		return "", result.Err
	}

	return result.Content, nil
}
