package main

import (
	"context"
	"log"
	"os"

	awsclient "github.com/eventbook/eventbook-api/internal/client/aws"
	"github.com/eventbook/eventbook-api/internal/db"
	"github.com/eventbook/eventbook-api/internal/helpers"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/services"
	"github.com/eventbook/eventbook-api/internal/webhooks"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing refund processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := helpers.ResolveDatabaseDSN(ctx, stage, secretsClient)
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}
	pool, err := helpers.NewPool(ctx, dsn, helpers.WorkerPoolSize)
	if err != nil {
		logger.Fatal("Failed to initialize database pool", zap.Error(err))
	}
	defer pool.Close()

	settlement := services.NewRefundSettlementService(db.New(pool), helpers.NewPoolTxRunner(pool, 3), logger.Log)
	processor := webhooks.NewProcessor(settlement, logger.Log)
	lambda.Start(processor.HandleSQSEvent)
}
