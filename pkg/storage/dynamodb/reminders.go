package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

// CreateReminderRecord persists a reminder dedupe record. The record id is
// the tenant+trigger+calendar-day key, so the conditional put doubles as the
// duplicate-send guard even when two sweeps race.
func (s *Store) CreateReminderRecord(ctx context.Context, record *models.ReminderRecord) error {
	record.CreatedAt = time.Now()

	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder record: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.RemindersTableName),
		Item:                recordAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("reminder %s: %w", record.Id, storage.ErrReminderAlreadySent)
		}
		return fmt.Errorf("failed to create reminder record in DynamoDB: %w", err)
	}

	return nil
}

// HasReminderRecord reports whether a reminder record exists for the key.
func (s *Store) HasReminderRecord(ctx context.Context, recordID string) (bool, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": recordID})
	if err != nil {
		return false, fmt.Errorf("failed to marshal reminder record ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.RemindersTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return false, fmt.Errorf("failed to get reminder record from DynamoDB: %w", err)
	}

	return result.Item != nil, nil
}
