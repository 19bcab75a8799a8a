package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kodipay/rentledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses. Kept as an
// interface so tests can substitute a mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB. The client is
// constructed at process start and injected; the store holds no global state.
type Store struct {
	Client              DynamoDBAPI
	TenantsTableName    string
	PropertiesTableName string
	PaymentsTableName   string
	RemindersTableName  string
}

// New creates a new Store.
func New(client DynamoDBAPI, tenantsTable, propertiesTable, paymentsTable, remindersTable string) *Store {
	return &Store{
		Client:              client,
		TenantsTableName:    tenantsTable,
		PropertiesTableName: propertiesTable,
		PaymentsTableName:   paymentsTable,
		RemindersTableName:  remindersTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
