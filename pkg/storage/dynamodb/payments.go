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
	"github.com/google/uuid"
	"github.com/kodipay/rentledger/pkg/models"
	"github.com/kodipay/rentledger/pkg/storage"
)

const paymentTenantIDIndex = "tenant_id-index"

// transactionMarkerID builds the uniqueness-marker key for an external
// transaction id. Marker items share the payments table but carry no
// tenant_id attribute, so they never appear in the tenant index.
func transactionMarkerID(transactionID string) string {
	return "txref#" + transactionID
}

// CreatePayment records a new pending payment. When the payment carries an
// external transaction id, a marker item keyed by that id is written in the
// same TransactWriteItems call; a duplicate gateway confirmation fails the
// marker's conditional put and returns storage.ErrDuplicateTransaction.
func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	now := time.Now()
	payment.Id = uuid.New().String()
	payment.Status = models.PENDING
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = now
	}

	paymentAV, err := attributevalue.MarshalMap(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment: %w", err)
	}

	// Manual entries carry no external transaction id; a plain conditional
	// put is enough.
	if payment.TransactionId == "" {
		input := &dynamodb.PutItemInput{
			TableName:           aws.String(s.PaymentsTableName),
			Item:                paymentAV,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		}
		if _, err := s.Client.PutItem(ctx, input); err != nil {
			return nil, fmt.Errorf("failed to create payment in DynamoDB: %w", err)
		}
		return payment, nil
	}

	marker := map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: transactionMarkerID(payment.TransactionId)},
		"payment_id": &types.AttributeValueMemberS{Value: payment.Id},
		"created_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the payment record.
				Put: &types.Put{
					TableName:           aws.String(s.PaymentsTableName),
					Item:                paymentAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Claim the external transaction id.
				Put: &types.Put{
					TableName:           aws.String(s.PaymentsTableName),
					Item:                marker,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, fmt.Errorf("transaction id %s: %w", payment.TransactionId, storage.ErrDuplicateTransaction)
				}
			}
		}
		return nil, fmt.Errorf("failed to create payment in DynamoDB: %w", err)
	}

	return payment, nil
}

// GetPayment retrieves a payment from DynamoDB by its ID.
func (s *Store) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": paymentID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, storage.ErrPaymentNotFound)
	}

	var payment models.Payment
	if err := attributevalue.UnmarshalMap(result.Item, &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment: %w", err)
	}

	return &payment, nil
}

// GetPaymentByTransactionId resolves the marker item claimed for an external
// transaction id to the payment that claimed it.
func (s *Store) GetPaymentByTransactionId(ctx context.Context, transactionID string) (*models.Payment, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": transactionMarkerID(transactionID)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction marker ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction marker from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("transaction id %s: %w", transactionID, storage.ErrPaymentNotFound)
	}

	var marker struct {
		PaymentId string `dynamodbav:"payment_id"`
	}
	if err := attributevalue.UnmarshalMap(result.Item, &marker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction marker: %w", err)
	}

	return s.GetPayment(ctx, marker.PaymentId)
}

// SettlePayment atomically transitions a pending payment to a terminal status
// and attaches the settlement timestamp. The conditional update only succeeds
// while the payment is still PENDING, so the transition happens exactly once.
func (s *Store) SettlePayment(ctx context.Context, paymentID string, status models.PaymentStatus) (*models.Payment, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settlement timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:    aws.String("SET #status = :status, settled_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":now":     nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("payment %s: %w", paymentID, storage.ErrPaymentNotPending)
		}
		return nil, fmt.Errorf("failed to settle payment in DynamoDB: %w", err)
	}

	var payment models.Payment
	if err := attributevalue.UnmarshalMap(result.Attributes, &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settled payment: %w", err)
	}

	return &payment, nil
}

// ListPaymentsByTenant retrieves all payments recorded for a tenant.
func (s *Store) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]models.Payment, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PaymentsTableName),
		IndexName:              aws.String(paymentTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tenant_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by tenant: %w", err)
	}

	var payments []models.Payment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payments: %w", err)
	}

	return payments, nil
}
