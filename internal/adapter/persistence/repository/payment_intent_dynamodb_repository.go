package repository

import (
	"context"
	"errors"
	"time"

	"duka_payments/internal/domain/entities"
	"duka_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	orderIDIndex           = "order_id-index"
	checkoutRequestIDIndex = "checkout_request_id-index"
)

type paymentIntentItem struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"order_id"`
	Phone             string `dynamodbav:"phone"`
	Amount            int64  `dynamodbav:"amount"`
	CheckoutRequestID string `dynamodbav:"checkout_request_id,omitempty"`
	MerchantRequestID string `dynamodbav:"merchant_request_id,omitempty"`
	Status            string `dynamodbav:"status"`
	ReceiptNumber     string `dynamodbav:"receipt_number,omitempty"`
	ResultDescription string `dynamodbav:"result_description,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type orderClaimItem struct {
	OrderID   string `dynamodbav:"order_id"`
	ClaimedAt string `dynamodbav:"claimed_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - intents table: PK id (string), GSI order_id-index (PK: order_id),
//     GSI checkout_request_id-index (PK: checkout_request_id)
//   - claims table: PK order_id (string)
//
// The claims table is the serialization point for initiation: a conditional
// put on order_id admits exactly one in-flight-or-settled attempt per order.

type PaymentIntentDynamoRepository struct {
	ddb          *dynamodb.Client
	intentsTable string
	claimsTable  string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client, intentsTable, claimsTable string) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:          ddb,
		intentsTable: intentsTable,
		claimsTable:  claimsTable,
	}
}

func (r *PaymentIntentDynamoRepository) CreatePending(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(intent))
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.intentsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return intent, nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.intentsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) GetActiveByOrderID(ctx context.Context, orderID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.intentsTable),
		IndexName:              aws.String(orderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		FilterExpression:       aws.String("#status = :pending OR #status = :completed"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid":       &types.AttributeValueMemberS{Value: orderID},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.IntentStatusPending)},
			":completed": &types.AttributeValueMemberS{Value: string(entities.IntentStatusCompleted)},
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return latestFromItems(out.Items)
}

func (r *PaymentIntentDynamoRepository) GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.intentsTable),
		IndexName:              aws.String(orderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return latestFromItems(out.Items)
}

func (r *PaymentIntentDynamoRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.intentsTable),
		IndexName:              aws.String(checkoutRequestIDIndex),
		KeyConditionExpression: aws.String("checkout_request_id = :crid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":crid": &types.AttributeValueMemberS{Value: checkoutRequestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) ClaimOrder(ctx context.Context, orderID string) (bool, error) {
	av, err := attributevalue.MarshalMap(orderClaimItem{
		OrderID:   orderID,
		ClaimedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.claimsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#oid)"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "order_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PaymentIntentDynamoRepository) ReleaseOrder(ctx context.Context, orderID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.claimsTable),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	return err
}

func (r *PaymentIntentDynamoRepository) MarkCompleted(ctx context.Context, id, receiptNumber, resultDescription string) (entities.PaymentIntent, bool, error) {
	return r.casFromPending(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :completed, #result_description = :desc, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(entities.IntentStatusCompleted)},
			":desc":       &types.AttributeValueMemberS{Value: resultDescription},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#result_description": "result_description",
			"#updated_at":         "updated_at",
		}
		if receiptNumber != "" {
			expr += ", #receipt_number = :receipt"
			vals[":receipt"] = &types.AttributeValueMemberS{Value: receiptNumber}
			names["#receipt_number"] = "receipt_number"
		}
		return expr, vals, names
	})
}

func (r *PaymentIntentDynamoRepository) MarkFailed(ctx context.Context, id, resultDescription string) (entities.PaymentIntent, bool, error) {
	return r.casFromPending(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :failed, #result_description = :desc, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":failed":     &types.AttributeValueMemberS{Value: string(entities.IntentStatusFailed)},
			":desc":       &types.AttributeValueMemberS{Value: resultDescription},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#result_description": "result_description",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

// casFromPending applies an update only while the intent is still PENDING.
// A conditional-check failure means a concurrent delivery already settled the
// intent; that is reported as swapped=false, not as an error.
func (r *PaymentIntentDynamoRepository) casFromPending(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PaymentIntent, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":pending"] = &types.AttributeValueMemberS{Value: string(entities.IntentStatusPending)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.intentsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentIntent{}, false, nil
		}
		return entities.PaymentIntent{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentIntent{}, false, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentIntent{}, false, err
	}
	return fromPaymentIntentItem(it), true, nil
}

func latestFromItems(items []map[string]types.AttributeValue) (entities.PaymentIntent, error) {
	var latest entities.PaymentIntent
	for _, raw := range items {
		var it paymentIntentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.PaymentIntent{}, err
		}
		intent := fromPaymentIntentItem(it)
		if latest.ID == "" || intent.CreatedAt.After(latest.CreatedAt) {
			latest = intent
		}
	}
	return latest, nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	return paymentIntentItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Phone:             p.Phone,
		Amount:            p.Amount,
		CheckoutRequestID: p.CheckoutRequestID,
		MerchantRequestID: p.MerchantRequestID,
		Status:            string(p.Status),
		ReceiptNumber:     p.ReceiptNumber,
		ResultDescription: p.ResultDescription,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentIntent{
		ID:                it.ID,
		OrderID:           it.OrderID,
		Phone:             it.Phone,
		Amount:            it.Amount,
		CheckoutRequestID: it.CheckoutRequestID,
		MerchantRequestID: it.MerchantRequestID,
		Status:            entities.IntentStatus(it.Status),
		ReceiptNumber:     it.ReceiptNumber,
		ResultDescription: it.ResultDescription,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
