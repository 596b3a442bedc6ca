package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/endpoint"

	"github.com/flarexio/quizblade"
)

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range quizblade.CORSHeaders {
			c.Header(k, v)
		}

		c.Next()
	}
}

func PreflightHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	}
}

// GenerateQuizHandler writes the envelope as is. The request body and
// path are not consulted.
func GenerateQuizHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		resp, err := endpoint(ctx, nil)
		if err != nil {
			c.Error(err)
			resp = quizblade.NewFailureEnvelope()
		}

		envelope, ok := resp.(quizblade.Envelope)
		if !ok {
			envelope = quizblade.NewFailureEnvelope()
		}

		for k, v := range envelope.Headers {
			c.Header(k, v)
		}

		c.Data(envelope.StatusCode, "application/json", []byte(envelope.Body))
	}
}
