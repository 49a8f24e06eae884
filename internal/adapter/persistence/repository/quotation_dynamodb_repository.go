package repository

import (
	"context"
	"strconv"
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName        = "quotations"
	defaultServiceQuotationsTableName = "service_quotations"
)

type quotationItem struct {
	ID         string            `dynamodbav:"id"`
	BuyerID    string            `dynamodbav:"buyer_id"`
	SellerID   string            `dynamodbav:"seller_id"`
	ItemID     string            `dynamodbav:"item_id"`
	Kind       string            `dynamodbav:"kind"`
	Quantity   int               `dynamodbav:"quantity"`
	MinPrice   string            `dynamodbav:"min_price"`
	MaxPrice   string            `dynamodbav:"max_price"`
	Currency   string            `dynamodbav:"currency"`
	Deadline   string            `dynamodbav:"deadline,omitempty"`
	Attributes map[string]string `dynamodbav:"attributes,omitempty"`
	Status     string            `dynamodbav:"status"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB. One
// instance serves one table; product and service quotations get separate
// instances over separate tables.
//
// Table requirements:
//   - PK: id (string)
type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, kind entities.ItemKind) *QuotationDynamoRepository {
	table := getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName)
	if kind == entities.ItemKindService {
		table = getenvDefault("SERVICE_QUOTATIONS_TABLE", defaultServiceQuotationsTableName)
	}
	return &QuotationDynamoRepository{ddb: ddb, tableName: table}
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// TxSetStatus appends a guarded status update: it only applies if the
// stored status still equals from, so a concurrent transition fails the
// whole transaction instead of being silently overwritten.
func (r *QuotationDynamoRepository) TxSetStatus(tx interfaces.ITx, id string, from, to entities.QuotationStatus, updatedAt time.Time) error {
	asDealTx(tx).add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from":       &types.AttributeValueMemberS{Value: string(from)},
				":to":         &types.AttributeValueMemberS{Value: string(to)},
				":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
			},
		},
	})
	return nil
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	minPrice, _ := strconv.ParseFloat(it.MinPrice, 64)
	maxPrice, _ := strconv.ParseFloat(it.MaxPrice, 64)
	return entities.Quotation{
		ID:         it.ID,
		BuyerID:    it.BuyerID,
		SellerID:   it.SellerID,
		ItemID:     it.ItemID,
		Kind:       entities.ItemKind(it.Kind),
		Quantity:   it.Quantity,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Currency:   it.Currency,
		Deadline:   parseTime(it.Deadline),
		Attributes: it.Attributes,
		Status:     entities.QuotationStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
