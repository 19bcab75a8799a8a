package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/kodipay/rentledger/pkg/config"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/notify"
	dydbstore "github.com/kodipay/rentledger/pkg/storage/dynamodb"
)

var scheduler *ledger.ReminderScheduler

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.NotificationsQueue == "" {
		log.Fatal("NOTIFICATIONS_QUEUE_URL environment variable not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg),
		cfg.TenantsTableName, cfg.PropertiesTableName, cfg.PaymentsTableName, cfg.RemindersTableName)
	notifier := notify.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.NotificationsQueue)

	scheduler = ledger.NewReminderScheduler(store, notifier)
}

// HandleRequest is triggered by an EventBridge Schedule once per day.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reminder sweep across all properties...")

	result, err := scheduler.SweepAll(ctx, time.Now())
	if err != nil {
		log.Printf("ERROR: reminder sweep failed: %v", err)
		return err
	}

	log.Printf("Reminder sweep finished: sent %d, failed %d, skipped %d", result.Sent, result.Failed, result.Skipped)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
