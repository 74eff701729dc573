package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"planboard/internal/attachment"
	"planboard/internal/authz"
	"planboard/internal/cli"
	"planboard/internal/repository"
	"planboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// State is in-process only; every invocation starts empty. The
	// binary exists to exercise the core end to end, real hosts embed
	// the services directly.
	projectRepo := repository.NewMemoryProjectRepo()
	commentRepo := repository.NewMemoryCommentRepo()

	cfg := attachment.DefaultConfig()
	if raw := os.Getenv("PLANBOARD_MAX_ATTACHMENT"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing PLANBOARD_MAX_ATTACHMENT: %w", err)
		}
		cfg.MaxFileSizeBytes = limit
	}
	registry := attachment.NewRegistry(cfg)

	// Decision logging is opt-in; it is chatty at debug level.
	var gateLogger *slog.Logger
	var observer service.Observer = service.NoopObserver{}
	if os.Getenv("PLANBOARD_DEBUG") != "" {
		gateLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		observer = service.NewLogObserver(os.Stderr)
	}
	gate := authz.NewGate(gateLogger)

	app := &cli.App{
		Projects: service.NewProjectService(gate, projectRepo, registry, observer),
		Reviews:  service.NewReviewService(gate, projectRepo, observer),
		Comments: service.NewCommentService(gate, commentRepo, registry, observer),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
