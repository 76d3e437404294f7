package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"go.uber.org/zap"

	"lyrah/internal/api"
	"lyrah/internal/cli"
	"lyrah/internal/service"
	"lyrah/internal/store"
	"lyrah/pkg/logger"
	"lyrah/pkg/snowflake"
)

func main() {
	logger.Init()
	defer logger.Sync()

	if err := snowflake.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake generator", zap.Error(err))
	}

	st, err := store.Open()
	if err != nil {
		logger.Logger.Fatal("Failed to open local store", zap.Error(err))
	}
	defer st.Close()

	client, err := api.NewClient(logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create API client", zap.Error(err))
	}

	session := service.NewSessionController(client, client, st, logger.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	figure.NewFigure("Lyrah", "slant", true).Print()

	if err := session.Restore(ctx); err != nil {
		logger.Logger.Warn("Session restore failed", zap.Error(err))
	}

	app := cli.New(client, session, st, logger.Logger)
	if err := app.Run(ctx); err != nil {
		logger.Logger.Fatal("Exited with error", zap.Error(err))
	}
}
