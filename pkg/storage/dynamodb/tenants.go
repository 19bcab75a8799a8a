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

const tenantPropertyIDIndex = "property_id-index"

// CreateTenant creates a new tenant record in DynamoDB at lease signing.
// The version counter starts at 1.
func (s *Store) CreateTenant(ctx context.Context, tenant *models.Tenant) (*models.Tenant, error) {
	now := time.Now()
	tenant.Version = 1
	tenant.CreatedAt = now
	tenant.UpdatedAt = now
	if tenant.Status == "" {
		tenant.Status = models.ACTIVE
	}
	if tenant.PaymentStanding == "" {
		tenant.PaymentStanding = models.CURRENT
	}

	tenantAV, err := attributevalue.MarshalMap(tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tenant: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TenantsTableName),
		Item:                tenantAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing tenants.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("tenant with ID %s already exists", tenant.Id)
		}
		return nil, fmt.Errorf("failed to create tenant in DynamoDB: %w", err)
	}

	return tenant, nil
}

// GetTenant retrieves a tenant from DynamoDB by its ID.
func (s *Store) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tenant ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.TenantsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("tenant %s: %w", tenantID, storage.ErrTenantNotFound)
	}

	var tenant models.Tenant
	if err := attributevalue.UnmarshalMap(result.Item, &tenant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenant: %w", err)
	}

	return &tenant, nil
}

// ListTenantsByProperty retrieves all tenants attached to a property.
func (s *Store) ListTenantsByProperty(ctx context.Context, propertyID string) ([]models.Tenant, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TenantsTableName),
		IndexName:              aws.String(tenantPropertyIDIndex),
		KeyConditionExpression: aws.String("property_id = :property_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":property_id": &types.AttributeValueMemberS{Value: propertyID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants by property: %w", err)
	}

	var tenants []models.Tenant
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tenants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenants: %w", err)
	}

	return tenants, nil
}

// ListActiveTenants retrieves every tenant with an open lease.
func (s *Store) ListActiveTenants(ctx context.Context) ([]models.Tenant, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.TenantsTableName),
		FilterExpression: aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(models.ACTIVE)},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenants table: %w", err)
	}

	var tenants []models.Tenant
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tenants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenants: %w", err)
	}

	return tenants, nil
}

// UpdateTenantLedger applies new running totals and wallet balance in one
// conditional write. The condition compares the monotonic version counter:
// if the stored version has moved since the caller's read, nothing is written
// and storage.ErrConcurrencyConflict is returned.
func (s *Store) UpdateTenantLedger(ctx context.Context, update *models.LedgerUpdate) (*models.Tenant, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp for ledger update: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TenantsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: update.TenantId},
		},
		UpdateExpression: aws.String("SET wallet_balance = :wallet, total_rent_paid = :rent, " +
			"total_utility_paid = :utility, total_deposit_paid = :deposit, " +
			"payment_standing = :standing, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wallet":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", update.WalletBalance)},
			":rent":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", update.TotalRentPaid)},
			":utility":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", update.TotalUtilityPaid)},
			":deposit":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", update.TotalDepositPaid)},
			":standing": &types.AttributeValueMemberS{Value: string(update.PaymentStanding)},
			":version":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", update.ExpectedVersion)},
			":inc":      &types.AttributeValueMemberN{Value: "1"},
			":now":      nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("tenant %s version %d: %w", update.TenantId, update.ExpectedVersion, storage.ErrConcurrencyConflict)
		}
		return nil, fmt.Errorf("failed to update tenant ledger in DynamoDB: %w", err)
	}

	var tenant models.Tenant
	if err := attributevalue.UnmarshalMap(result.Attributes, &tenant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated tenant: %w", err)
	}

	return &tenant, nil
}
