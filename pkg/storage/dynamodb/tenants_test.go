package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
	"github.com/kodipay/rentledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testStore(client DynamoDBAPI) *Store {
	return New(client, "tenants", "properties", "payments", "reminders")
}

func TestCreateTenant(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		tenant, err := store.CreateTenant(context.Background(), &models.Tenant{Id: "tenant1", PropertyId: "property1"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), tenant.Version)
		assert.Equal(t, models.ACTIVE, tenant.Status)
		assert.Equal(t, models.CURRENT, tenant.PaymentStanding)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.CreateTenant(context.Background(), &models.Tenant{Id: "tenant1"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockClient.AssertExpectations(t)
	})
}

func TestGetTenant(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		tenantAV, _ := attributevalue.MarshalMap(&models.Tenant{Id: "tenant1", WalletBalance: 500, Version: 3})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: tenantAV}, nil)

		tenant, err := store.GetTenant(context.Background(), "tenant1")

		assert.NoError(t, err)
		assert.Equal(t, "tenant1", tenant.Id)
		assert.Equal(t, int64(500), tenant.WalletBalance)
		assert.Equal(t, int64(3), tenant.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetTenant(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrTenantNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestUpdateTenantLedger(t *testing.T) {
	update := &models.LedgerUpdate{
		TenantId:         "tenant1",
		ExpectedVersion:  3,
		WalletBalance:    700,
		TotalRentPaid:    100000,
		TotalUtilityPaid: 5000,
		TotalDepositPaid: 30000,
		PaymentStanding:  models.CURRENT,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		updatedAV, _ := attributevalue.MarshalMap(&models.Tenant{
			Id: "tenant1", WalletBalance: 700, TotalRentPaid: 100000, Version: 4, UpdatedAt: time.Now(),
		})
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "attribute_exists(id) AND version = :version"
		})).Return(&dynamodb.UpdateItemOutput{Attributes: updatedAV}, nil)

		tenant, err := store.UpdateTenantLedger(context.Background(), update)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), tenant.Version)
		assert.Equal(t, int64(700), tenant.WalletBalance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Moved", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.UpdateTenantLedger(context.Background(), update)

		assert.ErrorIs(t, err, storage.ErrConcurrencyConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("DynamoDB Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := store.UpdateTenantLedger(context.Background(), update)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrConcurrencyConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestListTenantsByProperty(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	tenantAV, _ := attributevalue.MarshalMap(&models.Tenant{Id: "tenant1", PropertyId: "property1"})
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == tenantPropertyIDIndex
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{tenantAV}}, nil)

	tenants, err := store.ListTenantsByProperty(context.Background(), "property1")

	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.Equal(t, "tenant1", tenants[0].Id)
	mockClient.AssertExpectations(t)
}

func TestListActiveTenants(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := testStore(mockClient)

	tenantAV, _ := attributevalue.MarshalMap(&models.Tenant{Id: "tenant1", Status: models.ACTIVE})
	mockClient.On("Scan", mock.Anything, mock.Anything).
		Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{tenantAV}}, nil)

	tenants, err := store.ListActiveTenants(context.Background())

	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	mockClient.AssertExpectations(t)
}
