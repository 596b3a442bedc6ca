package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/flarexio/quizblade"

	mcpE "github.com/flarexio/quizblade/mcp"
)

func AddRouters(r *gin.Engine, endpoints quizblade.EndpointSet) {
	api := r.Group("/api", CORSMiddleware())
	{
		api.GET("/quiz", GenerateQuizHandler(endpoints.GenerateQuiz))
		api.POST("/quiz", GenerateQuizHandler(endpoints.GenerateQuiz))
		api.OPTIONS("/quiz", PreflightHandler())
	}
}

func AddStreamableRouters(r *gin.Engine, endpoints map[mcp.MCPMethod]mcpE.MCPEndpoint) {
	mcp := r.Group("/mcp")
	{
		mcp.POST("/", MCPStreamableHandler(endpoints))
	}
}
