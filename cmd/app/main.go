package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/kodipay/rentledger/pkg/config"
	"github.com/kodipay/rentledger/pkg/gateway"
	"github.com/kodipay/rentledger/pkg/handlers"
	"github.com/kodipay/rentledger/pkg/notify"
	dydbstore "github.com/kodipay/rentledger/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, cfg.TenantsTableName, cfg.PropertiesTableName, cfg.PaymentsTableName, cfg.RemindersTableName)

	// Reminder messages go to the SMS/email worker via SQS. Without a queue
	// URL, dispatch is a no-op and sweeps only do record-keeping.
	var notifier notify.Notifier = &notify.NoOpNotifier{}
	if cfg.NotificationsQueue != "" {
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.NotificationsQueue)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(store, &gateway.NoOpClient{}, notifier, logger)

	log.Printf("Starting server on port %s", cfg.HTTPPort)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
