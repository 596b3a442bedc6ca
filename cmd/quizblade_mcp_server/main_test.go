package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"

	mcpE "github.com/flarexio/quizblade/mcp"
)

type stubService struct{}

func (svc *stubService) GenerateQuiz(ctx context.Context) (string, error) {
	return `{"question": "q"}`, nil
}

func TestStdioMCPServerListen(t *testing.T) {
	assert := assert.New(t)

	s := NewStdioMCPServer()
	assert.NoError(s.AddEndpoint(mcp.MethodToolsList, mcpE.ListToolsEndpoint(&stubService{})))
	assert.Error(s.AddEndpoint(mcp.MethodToolsList, mcpE.ListToolsEndpoint(&stubService{})))

	input := strings.Join([]string{
		`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`,
		`{"jsonrpc": "2.0", "method": "notifications/initialized"}`,
		`not json`,
		``,
		`{"jsonrpc": "2.0", "id": 2, "method": "resources/list"}`,
	}, "\n")

	var out bytes.Buffer
	err := s.Listen(context.Background(), strings.NewReader(input), &out)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(lines, 2)
	assert.Contains(lines[0], mcpE.GenerateQuizTool)
	assert.Contains(lines[1], "method not found")
}
