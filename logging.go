package quizblade

import (
	"context"
	"time"

	"go.uber.org/zap"
)

func LoggingMiddleware(log *zap.Logger) ServiceMiddleware {
	log = log.With(
		zap.String("service", "quizblade"),
	)

	return func(next Service) Service {
		log.Info("service initialized")

		return &loggingMiddleware{
			log:  log,
			next: next,
		}
	}
}

type loggingMiddleware struct {
	log  *zap.Logger
	next Service
}

func (mw *loggingMiddleware) GenerateQuiz(ctx context.Context) (string, error) {
	log := mw.log.With(
		zap.String("action", "generate_quiz"),
	)

	log.Info("================ [START] ================")

	start := time.Now()
	defer func() {
		log.Info("================ [END] ================",
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	content, err := mw.next.GenerateQuiz(ctx)
	if err != nil {
		log.Error(err.Error())
		return "", err
	}

	log.Info("quiz generated", zap.String("content", content))
	return content, nil
}
