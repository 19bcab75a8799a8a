package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/kodipay/rentledger/pkg/config"
	"github.com/kodipay/rentledger/pkg/ledger"
	"github.com/kodipay/rentledger/pkg/storage"
	dydbstore "github.com/kodipay/rentledger/pkg/storage/dynamodb"
)

var store storage.Storage
var reconciler *ledger.Reconciler

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store = dydbstore.New(dynamodb.NewFromConfig(awsCfg),
		cfg.TenantsTableName, cfg.PropertiesTableName, cfg.PaymentsTableName, cfg.RemindersTableName)
	reconciler = ledger.NewReconciler(store)
}

// HandleRequest is triggered by an EventBridge Schedule. It re-derives every
// active tenant's running totals from the payment history and corrects drift.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting ledger reconciliation sweep...")

	tenants, err := store.ListActiveTenants(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list active tenants: %v", err)
		return err
	}

	corrected := 0
	failed := 0
	for _, tenant := range tenants {
		result, err := reconciler.Reconcile(ctx, tenant.Id)
		if err != nil {
			log.Printf("ERROR: failed to reconcile tenant %s: %v", tenant.Id, err)
			// Continue to the next tenant, don't let one failure stop the whole batch.
			failed++
			continue
		}
		if result.Corrected {
			corrected++
		}
	}

	log.Printf("Reconciliation sweep finished: %d tenants, %d corrected, %d failed", len(tenants), corrected, failed)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
