package main

import (
	"context"

	"github.com/nebulamart/userservice/internal/app/server"
	"github.com/nebulamart/userservice/internal/aws/storage"
	"github.com/nebulamart/userservice/internal/config"
	"github.com/nebulamart/userservice/internal/health"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	defer logging.Sync()

	cfg := config.NewConfig()
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Warn("Invalid log level, keeping info", zap.String("level", cfg.LogLevel))
	}

	dynamoClient, err := storage.NewFactory(cfg.DynamoDB).CreateClient(context.Background())
	if err != nil {
		logging.Fatal("Failed to create dynamodb client", zap.Error(err))
	}

	checker := health.NewChecker(dynamoClient, cfg.DynamoDB.Tables, health.DefaultTimeout)
	logging.Fatal("User service exited: ", zap.Error(
		server.NewServer(cfg, checker).Start(),
	))
}
