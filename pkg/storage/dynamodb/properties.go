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

const propertyOwnerIDIndex = "owner_id-index"

// CreateProperty registers a new property in DynamoDB.
func (s *Store) CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error) {
	property.CreatedAt = time.Now()

	propertyAV, err := attributevalue.MarshalMap(property)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal property: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.PropertiesTableName),
		Item:                propertyAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("property with ID %s already exists", property.Id)
		}
		return nil, fmt.Errorf("failed to create property in DynamoDB: %w", err)
	}

	return property, nil
}

// GetProperty retrieves a property from DynamoDB by its ID.
func (s *Store) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": propertyID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal property ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PropertiesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get property from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("property %s: %w", propertyID, storage.ErrPropertyNotFound)
	}

	var property models.Property
	if err := attributevalue.UnmarshalMap(result.Item, &property); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property: %w", err)
	}

	return &property, nil
}

// ListPropertiesByOwner retrieves all properties belonging to an owner.
func (s *Store) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PropertiesTableName),
		IndexName:              aws.String(propertyOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties by owner: %w", err)
	}

	var properties []models.Property
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &properties); err != nil {
		return nil, fmt.Errorf("failed to unmarshal properties: %w", err)
	}

	return properties, nil
}

// ListProperties retrieves all properties from DynamoDB.
func (s *Store) ListProperties(ctx context.Context) ([]models.Property, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.PropertiesTableName),
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan properties table: %w", err)
	}

	var properties []models.Property
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &properties); err != nil {
		return nil, fmt.Errorf("failed to unmarshal properties: %w", err)
	}

	return properties, nil
}
