package main

import (
	"context"
	"log"
	"os"

	awsclient "github.com/eventbook/eventbook-api/internal/client/aws"
	stripeclient "github.com/eventbook/eventbook-api/internal/client/payment/stripe"
	"github.com/eventbook/eventbook-api/internal/helpers"
	"github.com/eventbook/eventbook-api/internal/logger"
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
	logger.Info("Lambda Cold Start: Initializing webhook receiver for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	webhookSecret, err := secretsClient.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")
	if err != nil {
		logger.Fatal("Failed to get Stripe webhook secret", zap.Error(err))
	}
	verifier, err := stripeclient.NewWebhookVerifier(webhookSecret, logger.Log)
	if err != nil {
		logger.Fatal("Failed to create webhook verifier", zap.Error(err))
	}

	publisher, err := awsclient.NewSQSPublisher(ctx, os.Getenv("REFUND_SQS_QUEUE_URL"))
	if err != nil {
		logger.Fatal("Failed to initialize SQS publisher", zap.Error(err))
	}

	receiver := webhooks.NewReceiver(verifier, publisher, logger.Log)
	lambda.Start(receiver.HandleAPIGatewayRequest)
}
