package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/samandr77/microservices/scheduling/internal/repository"
	"github.com/samandr77/microservices/scheduling/internal/service"
	"github.com/samandr77/microservices/scheduling/pkg/config"
	"github.com/samandr77/microservices/scheduling/pkg/logger"
	"github.com/samandr77/microservices/scheduling/pkg/postgres"
)

func main() {
	ctx := context.Background()

	cfg, err := config.New(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel)))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect to postgres:", err)
		os.Exit(1)
	}
	defer pool.Close()

	// opsctl never sends mail.
	s := service.New(repository.New(pool), nil, false)

	root := newRootCommand(s, os.Stdout)

	if err := root.ExecuteContext(logger.SetLogType(ctx, "cli")); err != nil {
		pool.Close()
		os.Exit(1)
	}
}
