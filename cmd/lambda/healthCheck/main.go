package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nebulamart/userservice/internal/aws/storage"
	"github.com/nebulamart/userservice/internal/config"
	"github.com/nebulamart/userservice/internal/handlers"
	"github.com/nebulamart/userservice/internal/health"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

var healthHandler *handlers.HealthHandler

func init() {
	cfg := config.NewConfig()
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Warn("Invalid log level, keeping info", zap.String("level", cfg.LogLevel))
	}
	dynamoClient, err := storage.NewFactory(cfg.DynamoDB).CreateClient(context.Background())
	if err != nil {
		logging.Fatal("Failed to create dynamodb client", zap.Error(err))
	}
	healthHandler = handlers.NewHealthHandler(
		health.NewChecker(dynamoClient, cfg.DynamoDB.Tables, health.DefaultTimeout),
	)
}

func main() {
	lambda.Start(healthHandler.Handle)
}
