package dynamodb

import (
	"context"
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

func TestCreateReminderRecord(t *testing.T) {
	record := func() *models.ReminderRecord {
		return &models.ReminderRecord{
			Id:       models.ReminderRecordId("tenant1", "PAYMENT_DATE", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)),
			TenantId: "tenant1",
			Trigger:  "PAYMENT_DATE",
			Day:      "2026-06-10",
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		err := store.CreateReminderRecord(context.Background(), record())

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Sent Today", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.CreateReminderRecord(context.Background(), record())

		assert.ErrorIs(t, err, storage.ErrReminderAlreadySent)
		mockClient.AssertExpectations(t)
	})
}

func TestHasReminderRecord(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		recordAV, _ := attributevalue.MarshalMap(&models.ReminderRecord{Id: "tenant1#PAYMENT_DATE#2026-06-10"})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: recordAV}, nil)

		exists, err := store.HasReminderRecord(context.Background(), "tenant1#PAYMENT_DATE#2026-06-10")

		assert.NoError(t, err)
		assert.True(t, exists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := testStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		exists, err := store.HasReminderRecord(context.Background(), "tenant1#PAYMENT_DATE#2026-06-10")

		assert.NoError(t, err)
		assert.False(t, exists)
		mockClient.AssertExpectations(t)
	})
}
