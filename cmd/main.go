package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/scheduling/internal/api"
	"github.com/samandr77/microservices/scheduling/internal/api/events"
	"github.com/samandr77/microservices/scheduling/internal/clients/mailer"
	"github.com/samandr77/microservices/scheduling/internal/repository"
	"github.com/samandr77/microservices/scheduling/internal/service"
	"github.com/samandr77/microservices/scheduling/pkg/broker"
	"github.com/samandr77/microservices/scheduling/pkg/config"
	"github.com/samandr77/microservices/scheduling/pkg/logger"
	"github.com/samandr77/microservices/scheduling/pkg/postgres"
	"github.com/samandr77/microservices/scheduling/pkg/token"
)

const (
	ReadTimeout       = 20 * time.Second
	ReadHeaderTimeout = 5 * time.Second
	WriteTimeout      = 20 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	slog.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel)))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	tokens, err := token.NewParser(cfg.JWT.PublicKey)
	panicOnErr("load jwt public key", err)

	mail, err := mailer.New(cfg.Mailer)
	panicOnErr("create mailer", err)

	repo := repository.New(pool)
	s := service.New(repo, mail, cfg.IsDevelopment())

	// Kafka consumers
	if len(cfg.Kafka.Brokers) > 0 {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.NotificationTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.NotificationTopic, eventHandler.NotificationCreated)
		consumer.Consume(ctx)
	} else {
		slog.InfoContext(ctx, "KAFKA_BROKERS is empty, notification consumer disabled")
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(tokens, cfg.CronSecret)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
		WriteTimeout:      WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort, "env", cfg.AppEnv)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
