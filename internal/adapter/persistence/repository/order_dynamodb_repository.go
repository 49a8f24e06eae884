package repository

import (
	"context"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type addressSnapshotItem struct {
	Line1      string `dynamodbav:"line1,omitempty"`
	Line2      string `dynamodbav:"line2,omitempty"`
	City       string `dynamodbav:"city,omitempty"`
	State      string `dynamodbav:"state,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
	Country    string `dynamodbav:"country,omitempty"`
}

type orderItem struct {
	ID              string              `dynamodbav:"id"`
	OrderNumber     string              `dynamodbav:"order_number"`
	QuotationID     string              `dynamodbav:"quotation_id"`
	InvoiceID       string              `dynamodbav:"invoice_id"`
	ThreadID        string              `dynamodbav:"thread_id"`
	BuyerID         string              `dynamodbav:"buyer_id"`
	SellerID        string              `dynamodbav:"seller_id"`
	Kind            string              `dynamodbav:"kind"`
	FinalPrice      string              `dynamodbav:"final_price"`
	Currency        string              `dynamodbav:"currency"`
	ShippingAddress addressSnapshotItem `dynamodbav:"shipping_address"`
	BillingAddress  addressSnapshotItem `dynamodbav:"billing_address"`
	Status          string              `dynamodbav:"status"`
	TrackingNumber  string              `dynamodbav:"tracking_number,omitempty"`
	ShippedAt       string              `dynamodbav:"shipped_at,omitempty"`
	DeliveredAt     string              `dynamodbav:"delivered_at,omitempty"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB. Both item
// kinds share one table; Kind is an attribute, not a partition.
//
// Table requirements:
//   - PK: id (string)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) TxCreate(tx interfaces.ITx, o entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	asDealTx(tx).add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	return nil
}

func (r *OrderDynamoRepository) TxSave(tx interfaces.ITx, o entities.Order, seenStatus entities.OrderStatus) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	asDealTx(tx).add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :seen_status"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":seen_status": &types.AttributeValueMemberS{Value: string(seenStatus)},
			},
		},
	})
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		QuotationID:     o.QuotationID,
		InvoiceID:       o.InvoiceID,
		ThreadID:        o.ThreadID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		Kind:            string(o.Kind),
		FinalPrice:      floatToString(o.FinalPrice),
		Currency:        o.Currency,
		ShippingAddress: toAddressSnapshotItem(o.ShippingAddress),
		BillingAddress:  toAddressSnapshotItem(o.BillingAddress),
		Status:          string(o.Status),
		TrackingNumber:  o.TrackingNumber,
		ShippedAt:       formatTime(o.ShippedAt),
		DeliveredAt:     formatTime(o.DeliveredAt),
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:              it.ID,
		OrderNumber:     it.OrderNumber,
		QuotationID:     it.QuotationID,
		InvoiceID:       it.InvoiceID,
		ThreadID:        it.ThreadID,
		BuyerID:         it.BuyerID,
		SellerID:        it.SellerID,
		Kind:            entities.ItemKind(it.Kind),
		FinalPrice:      parseFloat(it.FinalPrice),
		Currency:        it.Currency,
		ShippingAddress: fromAddressSnapshotItem(it.ShippingAddress),
		BillingAddress:  fromAddressSnapshotItem(it.BillingAddress),
		Status:          entities.OrderStatus(it.Status),
		TrackingNumber:  it.TrackingNumber,
		ShippedAt:       parseTime(it.ShippedAt),
		DeliveredAt:     parseTime(it.DeliveredAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func toAddressSnapshotItem(a entities.AddressSnapshot) addressSnapshotItem {
	return addressSnapshotItem{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func fromAddressSnapshotItem(a addressSnapshotItem) entities.AddressSnapshot {
	return entities.AddressSnapshot{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
