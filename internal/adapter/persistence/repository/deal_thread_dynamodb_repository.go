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

const (
	defaultDealThreadsTableName = "deal_threads"
	quotationIDIndexName        = "quotation_id-index"
)

type activeInvoiceItem struct {
	InvoiceID   string `dynamodbav:"invoice_id"`
	Status      string `dynamodbav:"status"`
	Token       string `dynamodbav:"token,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

type lastMessageItem struct {
	MessageID string `dynamodbav:"message_id"`
	SenderID  string `dynamodbav:"sender_id"`
	Content   string `dynamodbav:"content"`
	SentAt    string `dynamodbav:"sent_at"`
}

type dealThreadItem struct {
	ID            string             `dynamodbav:"id"`
	BuyerID       string             `dynamodbav:"buyer_id"`
	SellerID      string             `dynamodbav:"seller_id"`
	QuotationID   string             `dynamodbav:"quotation_id"`
	Kind          string             `dynamodbav:"kind"`
	Phase         string             `dynamodbav:"phase"`
	ActiveInvoice *activeInvoiceItem `dynamodbav:"active_invoice,omitempty"`
	OrderID       string             `dynamodbav:"order_id,omitempty"`
	LastMessage   *lastMessageItem   `dynamodbav:"last_message,omitempty"`
	UnreadBy      string             `dynamodbav:"unread_by,omitempty"`
	CreatedAt     string             `dynamodbav:"created_at"`
	UpdatedAt     string             `dynamodbav:"updated_at"`
}

// DealThreadDynamoRepository persists DealThread entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI quotation_id-index, PK quotation_id (string)
//
// Threads are written whole: TransactWriteItems refuses two writes against
// the same item, so a saga that both moves the phase and swaps the active
// invoice must express that as a single Put. The phase condition on TxSave
// serializes concurrent saga steps on the same deal.
type DealThreadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealThreadRepository = (*DealThreadDynamoRepository)(nil)

func NewDealThreadDynamoRepository(ddb *dynamodb.Client) *DealThreadDynamoRepository {
	return &DealThreadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEAL_THREADS_TABLE", defaultDealThreadsTableName),
	}
}

func (r *DealThreadDynamoRepository) GetByID(ctx context.Context, id string) (entities.DealThread, error) {
	if id == "" {
		return entities.DealThread{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DealThread{}, err
	}
	if len(out.Item) == 0 {
		return entities.DealThread{}, nil
	}

	var it dealThreadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DealThread{}, err
	}
	return fromDealThreadItem(it), nil
}

// GetByQuotationID resolves a thread through the quotation GSI. The index
// is eventually consistent; callers re-read by id when they need the
// freshest phase.
func (r *DealThreadDynamoRepository) GetByQuotationID(ctx context.Context, quotationID string) (entities.DealThread, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationIDIndexName),
		KeyConditionExpression: aws.String("#quotation_id = :quotation_id"),
		ExpressionAttributeNames: map[string]string{
			"#quotation_id": "quotation_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quotation_id": &types.AttributeValueMemberS{Value: quotationID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.DealThread{}, err
	}
	if len(out.Items) == 0 {
		return entities.DealThread{}, nil
	}

	var it dealThreadItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.DealThread{}, err
	}
	// Re-read through the base table for read-your-writes consistency.
	return r.GetByID(ctx, it.ID)
}

func (r *DealThreadDynamoRepository) TxCreate(tx interfaces.ITx, thread entities.DealThread) error {
	av, err := attributevalue.MarshalMap(toDealThreadItem(thread))
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

func (r *DealThreadDynamoRepository) TxSave(tx interfaces.ITx, thread entities.DealThread, seenPhase entities.ThreadPhase) error {
	av, err := attributevalue.MarshalMap(toDealThreadItem(thread))
	if err != nil {
		return err
	}
	asDealTx(tx).add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id) AND #phase = :seen_phase"),
			ExpressionAttributeNames: map[string]string{
				"#id":    "id",
				"#phase": "phase",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":seen_phase": &types.AttributeValueMemberS{Value: string(seenPhase)},
			},
		},
	})
	return nil
}

func toDealThreadItem(t entities.DealThread) dealThreadItem {
	it := dealThreadItem{
		ID:          t.ID,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
		QuotationID: t.QuotationID,
		Kind:        string(t.Kind),
		Phase:       string(t.Phase),
		OrderID:     t.OrderID,
		UnreadBy:    t.UnreadBy,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
	if t.ActiveInvoice != nil {
		it.ActiveInvoice = &activeInvoiceItem{
			InvoiceID:   t.ActiveInvoice.InvoiceID,
			Status:      string(t.ActiveInvoice.Status),
			Token:       t.ActiveInvoice.Token,
			CreatedAt:   formatTime(t.ActiveInvoice.CreatedAt),
			RespondedAt: formatTime(t.ActiveInvoice.RespondedAt),
		}
	}
	if t.LastMessage != nil {
		it.LastMessage = &lastMessageItem{
			MessageID: t.LastMessage.MessageID,
			SenderID:  t.LastMessage.SenderID,
			Content:   t.LastMessage.Content,
			SentAt:    formatTime(t.LastMessage.SentAt),
		}
	}
	return it
}

func fromDealThreadItem(it dealThreadItem) entities.DealThread {
	t := entities.DealThread{
		ID:          it.ID,
		BuyerID:     it.BuyerID,
		SellerID:    it.SellerID,
		QuotationID: it.QuotationID,
		Kind:        entities.ItemKind(it.Kind),
		Phase:       entities.ThreadPhase(it.Phase),
		OrderID:     it.OrderID,
		UnreadBy:    it.UnreadBy,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.ActiveInvoice != nil {
		t.ActiveInvoice = &entities.ActiveInvoice{
			InvoiceID:   it.ActiveInvoice.InvoiceID,
			Status:      entities.ActiveInvoiceStatus(it.ActiveInvoice.Status),
			Token:       it.ActiveInvoice.Token,
			CreatedAt:   parseTime(it.ActiveInvoice.CreatedAt),
			RespondedAt: parseTime(it.ActiveInvoice.RespondedAt),
		}
	}
	if it.LastMessage != nil {
		t.LastMessage = &entities.LastMessage{
			MessageID: it.LastMessage.MessageID,
			SenderID:  it.LastMessage.SenderID,
			Content:   it.LastMessage.Content,
			SentAt:    parseTime(it.LastMessage.SentAt),
		}
	}
	return t
}
