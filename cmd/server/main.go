package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"taskboard/internal/auth"
	"taskboard/internal/task"
	"taskboard/pkg/config"
	"taskboard/pkg/httpserver"
	"taskboard/pkg/logger"
	"taskboard/pkg/mongo"
)

func main() {
	ctx := context.Background()

	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg, logger.WithAttr(slog.String("service", "taskboard")))

	if err := run(ctx, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var mongoCfg mongo.Config
	if err := config.Load(&mongoCfg); err != nil {
		return err
	}
	var authCfg auth.Config
	if err := config.Load(&authCfg); err != nil {
		return err
	}
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	client, err := mongo.New(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongo", logger.Error(err))
		}
	}()
	db := client.Database(mongoCfg.Database)

	userStore := auth.NewMongoStorage(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		return err
	}
	taskStore := task.NewMongoStorage(db)
	if err := taskStore.EnsureIndexes(ctx); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(authCfg.Secret, authCfg.TokenTTL)
	if err != nil {
		return err
	}
	authSvc := auth.NewService(userStore, tokens, auth.WithLogger(log))
	taskSvc := task.NewService(taskStore)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log, mongo.Healthcheck(client)))
	r.Mount("/auth", auth.NewHandler(authSvc, log).Routes())
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens, userStore, log))
		r.Mount("/tasks", task.NewHandler(taskSvc, log).Routes())
	})

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
