package repository

import (
	"context"
	"errors"
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
	defaultInvoicesTableName        = "invoices"
	defaultServiceInvoicesTableName = "service_invoices"
)

type partyBlockItem struct {
	Name        string `dynamodbav:"name,omitempty"`
	CompanyName string `dynamodbav:"company_name,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	AddressLine string `dynamodbav:"address_line,omitempty"`
}

type invoiceLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type invoiceItem struct {
	ID              string            `dynamodbav:"id"`
	QuotationID     string            `dynamodbav:"quotation_id"`
	SellerID        string            `dynamodbav:"seller_id"`
	BuyerID         string            `dynamodbav:"buyer_id"`
	ThreadID        string            `dynamodbav:"thread_id"`
	Kind            string            `dynamodbav:"kind"`
	Number          string            `dynamodbav:"number"`
	InvoiceDate     string            `dynamodbav:"invoice_date"`
	DueDate         string            `dynamodbav:"due_date"`
	Currency        string            `dynamodbav:"currency"`
	SellerBlock     partyBlockItem    `dynamodbav:"seller_block"`
	BuyerBlock      partyBlockItem    `dynamodbav:"buyer_block"`
	Items           []invoiceLineItem `dynamodbav:"items,omitempty"`
	NegotiatedPrice string            `dynamodbav:"negotiated_price"`
	Subtotal        string            `dynamodbav:"subtotal"`
	TaxAmount       string            `dynamodbav:"tax_amount"`
	ShippingAmount  string            `dynamodbav:"shipping_amount"`
	AdditionalFees  string            `dynamodbav:"additional_fees"`
	Total           string            `dynamodbav:"total"`
	PaymentTerms    string            `dynamodbav:"payment_terms,omitempty"`
	DeliveryTerms   string            `dynamodbav:"delivery_terms,omitempty"`
	Status          string            `dynamodbav:"status"`
	ViewedByBuyer   bool              `dynamodbav:"viewed_by_buyer"`
	ViewedAt        string            `dynamodbav:"viewed_at,omitempty"`
	ExpiresAt       string            `dynamodbav:"expires_at,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB. One
// instance serves one table; product and service invoices get separate
// instances over separate tables.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, kind entities.ItemKind) *InvoiceDynamoRepository {
	table := getenvDefault("INVOICES_TABLE", defaultInvoicesTableName)
	if kind == entities.ItemKindService {
		table = getenvDefault("SERVICE_INVOICES_TABLE", defaultServiceInvoicesTableName)
	}
	return &InvoiceDynamoRepository{ddb: ddb, tableName: table}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) TxCreate(tx interfaces.ITx, inv entities.Invoice) error {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
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

func (r *InvoiceDynamoRepository) TxSave(tx interfaces.ITx, inv entities.Invoice, seenStatus entities.InvoiceStatus) error {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
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

func (r *InvoiceDynamoRepository) TxDelete(tx interfaces.ITx, id string, seenStatus entities.InvoiceStatus) error {
	asDealTx(tx).add(types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
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

// SetViewed flips the first-view markers. The condition makes the flip
// happen at most once; a lost race simply re-reads the item so every caller
// sees the same first-view timestamp.
func (r *InvoiceDynamoRepository) SetViewed(ctx context.Context, id string, at time.Time) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #viewed_by_buyer = :true, #viewed_at = :viewed_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #viewed_by_buyer = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#viewed_by_buyer": "viewed_by_buyer",
			"#viewed_at":       "viewed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":      &types.AttributeValueMemberBOOL{Value: true},
			":false":     &types.AttributeValueMemberBOOL{Value: false},
			":viewed_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, id)
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:              inv.ID,
		QuotationID:     inv.QuotationID,
		SellerID:        inv.SellerID,
		BuyerID:         inv.BuyerID,
		ThreadID:        inv.ThreadID,
		Kind:            string(inv.Kind),
		Number:          inv.Number,
		InvoiceDate:     formatTime(inv.InvoiceDate),
		DueDate:         formatTime(inv.DueDate),
		Currency:        inv.Currency,
		SellerBlock:     toPartyBlockItem(inv.SellerBlock),
		BuyerBlock:      toPartyBlockItem(inv.BuyerBlock),
		NegotiatedPrice: floatToString(inv.NegotiatedPrice),
		Subtotal:        floatToString(inv.Subtotal),
		TaxAmount:       floatToString(inv.TaxAmount),
		ShippingAmount:  floatToString(inv.ShippingAmount),
		AdditionalFees:  floatToString(inv.AdditionalFees),
		Total:           floatToString(inv.Total),
		PaymentTerms:    inv.Terms.Payment,
		DeliveryTerms:   inv.Terms.Delivery,
		Status:          string(inv.Status),
		ViewedByBuyer:   inv.ViewedByBuyer,
		ViewedAt:        formatTime(inv.ViewedAt),
		ExpiresAt:       formatTime(inv.ExpiresAt),
		CreatedAt:       formatTime(inv.CreatedAt),
		UpdatedAt:       formatTime(inv.UpdatedAt),
	}
	for _, li := range inv.Items {
		it.Items = append(it.Items, invoiceLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   floatToString(li.UnitPrice),
			Total:       floatToString(li.Total),
		})
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:              it.ID,
		QuotationID:     it.QuotationID,
		SellerID:        it.SellerID,
		BuyerID:         it.BuyerID,
		ThreadID:        it.ThreadID,
		Kind:            entities.ItemKind(it.Kind),
		Number:          it.Number,
		InvoiceDate:     parseTime(it.InvoiceDate),
		DueDate:         parseTime(it.DueDate),
		Currency:        it.Currency,
		SellerBlock:     fromPartyBlockItem(it.SellerBlock),
		BuyerBlock:      fromPartyBlockItem(it.BuyerBlock),
		NegotiatedPrice: parseFloat(it.NegotiatedPrice),
		Subtotal:        parseFloat(it.Subtotal),
		TaxAmount:       parseFloat(it.TaxAmount),
		ShippingAmount:  parseFloat(it.ShippingAmount),
		AdditionalFees:  parseFloat(it.AdditionalFees),
		Total:           parseFloat(it.Total),
		Terms:           entities.InvoiceTerms{Payment: it.PaymentTerms, Delivery: it.DeliveryTerms},
		Status:          entities.InvoiceStatus(it.Status),
		ViewedByBuyer:   it.ViewedByBuyer,
		ViewedAt:        parseTime(it.ViewedAt),
		ExpiresAt:       parseTime(it.ExpiresAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	for _, li := range it.Items {
		inv.Items = append(inv.Items, entities.InvoiceItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   parseFloat(li.UnitPrice),
			Total:       parseFloat(li.Total),
		})
	}
	return inv
}

func toPartyBlockItem(p entities.PartyBlock) partyBlockItem {
	return partyBlockItem{Name: p.Name, CompanyName: p.CompanyName, Email: p.Email, AddressLine: p.AddressLine}
}

func fromPartyBlockItem(p partyBlockItem) entities.PartyBlock {
	return entities.PartyBlock{Name: p.Name, CompanyName: p.CompanyName, Email: p.Email, AddressLine: p.AddressLine}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
