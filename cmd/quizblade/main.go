package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/micro"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	_ "github.com/viant/afsc/s3"

	"github.com/flarexio/quizblade"
	"github.com/flarexio/quizblade/llm"
	"github.com/flarexio/quizblade/persistence/chromem"
	"github.com/flarexio/quizblade/source"

	mcpE "github.com/flarexio/quizblade/mcp"
	httpT "github.com/flarexio/quizblade/transport/http"
	natsT "github.com/flarexio/quizblade/transport/nats"
)

func main() {
	cmd := &cli.Command{
		Name:  "quizblade",
		Usage: "QuizBlade service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Path to the QuizBlade service",
			},
			&cli.StringFlag{
				Name:     "openai-api-key",
				Usage:    "OpenAI API key",
				Sources:  cli.EnvVars("OPENAI_API_KEY"),
				Required: true,
			},
			&cli.StringFlag{
				Name:  "scheme",
				Usage: "Storage scheme of the reference document",
				Value: source.DefaultScheme,
			},
			&cli.BoolFlag{
				Name:  "nats",
				Usage: "Enable NATS transport",
				Value: false,
			},
			&cli.StringFlag{
				Name:    "nats-url",
				Usage:   "NATS server URL",
				Value:   "wss://nats.flarex.io",
				Sources: cli.EnvVars("NATS_URL"),
			},
			&cli.StringFlag{
				Name:  "http-addr",
				Usage: "HTTP server address",
				Value: ":8080",
			},
		},
		Action: run,
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err.Error())
	}
}

func loadConfig(path string) (quizblade.Config, error) {
	var cfg quizblade.Config

	f, err := os.Open(filepath.Join(path, "config.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		path = filepath.Join(homeDir, ".flarex", "quizblade")
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	cfg.Model.APIKey = cmd.String("openai-api-key")
	cfg.Location = source.DefaultLocation

	embedder, err := llm.NewOpenAIEmbedder(cfg.Model)
	if err != nil {
		return err
	}

	completer, err := llm.NewOpenAICompleter(cfg.Model)
	if err != nil {
		return err
	}

	pipeline := quizblade.NewPipeline(
		source.NewAFSSource(cmd.String("scheme")),
		chromem.NewIndexFactory(embedder, cfg.Vector),
		completer,
	)

	svc := quizblade.NewService(cfg, pipeline)
	svc = quizblade.LoggingMiddleware(log)(svc)

	endpoints := quizblade.EndpointSet{
		GenerateQuiz: quizblade.GenerateQuizEndpoint(svc),
	}

	// Add NATS Transport
	if cmd.Bool("nats") {
		natsURL := cmd.String("nats-url")
		natsCreds := filepath.Join(path, "user.creds")

		idBytes, err := os.ReadFile(filepath.Join(path, "id"))
		if err != nil {
			return err
		}

		edgeID := strings.TrimSpace(string(idBytes))

		nc, err := nats.Connect(natsURL,
			nats.Name("QuizBlade Server - "+edgeID),
			nats.UserCredentials(natsCreds),
		)

		if err != nil {
			return err
		}
		defer nc.Drain()

		srv, err := micro.AddService(nc, micro.Config{
			Name:    "quizblade",
			Version: "1.0.0",
		})

		if err != nil {
			return err
		}
		defer srv.Stop()

		topic := "edges." + edgeID + ".quizblade"

		root := srv.AddGroup(topic)
		natsT.AddEndpoints(root, endpoints)
	}

	// Add HTTP Transport
	{
		r := gin.Default()
		httpT.AddRouters(r, endpoints)

		endpoints := make(map[mcp.MCPMethod]mcpE.MCPEndpoint)
		endpoints[mcp.MethodInitialize] = mcpE.InitializeEndpoint(svc)
		endpoints[mcp.MethodPing] = mcpE.PingEndpoint(svc)
		endpoints[mcp.MethodToolsList] = mcpE.ListToolsEndpoint(svc)
		endpoints[mcp.MethodToolsCall] = mcpE.CallToolEndpoint(svc)
		httpT.AddStreamableRouters(r, endpoints)

		httpAddr := cmd.String("http-addr")
		go r.Run(httpAddr)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sign := <-quit

	log.Info("graceful shutdown", zap.String("signal", sign.String()))
	return nil
}
