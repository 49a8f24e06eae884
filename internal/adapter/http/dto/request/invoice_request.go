package request

import (
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase"
)

// InvoiceItemRequest is one invoice line in the wire format.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

// GenerateInvoiceRequest creates an invoice from an accepted negotiation.
type GenerateInvoiceRequest struct {
	QuotationID     string               `json:"quotation_id" binding:"required"`
	NegotiatedPrice float64              `json:"negotiated_price"`
	Currency        string               `json:"currency"`
	Items           []InvoiceItemRequest `json:"items"`
	TaxAmount       float64              `json:"tax_amount"`
	ShippingAmount  float64              `json:"shipping_amount"`
	AdditionalFees  float64              `json:"additional_fees"`
	PaymentTerms    string               `json:"payment_terms"`
	DeliveryTerms   string               `json:"delivery_terms"`
	DueDate         *time.Time           `json:"due_date"`
	SellerName      string               `json:"seller_name"`
	SellerCompany   string               `json:"seller_company"`
	SellerEmail     string               `json:"seller_email"`
	SellerAddress   string               `json:"seller_address"`
}

// ToInput translates the payload into the use case command.
func (r GenerateInvoiceRequest) ToInput() usecase.GenerateInvoiceInput {
	in := usecase.GenerateInvoiceInput{
		QuotationID:     r.QuotationID,
		NegotiatedPrice: r.NegotiatedPrice,
		Currency:        r.Currency,
		Items:           toInvoiceItems(r.Items),
		TaxAmount:       r.TaxAmount,
		ShippingAmount:  r.ShippingAmount,
		AdditionalFees:  r.AdditionalFees,
		PaymentTerms:    r.PaymentTerms,
		DeliveryTerms:   r.DeliveryTerms,
		SellerBlock: entities.PartyBlock{
			Name:        r.SellerName,
			CompanyName: r.SellerCompany,
			Email:       r.SellerEmail,
			AddressLine: r.SellerAddress,
		},
	}
	if r.DueDate != nil {
		in.DueDate = *r.DueDate
	}
	return in
}

// UpdateInvoiceRequest merge-patches a pending invoice. Absent fields keep
// their stored values.
type UpdateInvoiceRequest struct {
	NegotiatedPrice *float64              `json:"negotiated_price"`
	Currency        *string               `json:"currency"`
	Items           *[]InvoiceItemRequest `json:"items"`
	TaxAmount       *float64              `json:"tax_amount"`
	ShippingAmount  *float64              `json:"shipping_amount"`
	AdditionalFees  *float64              `json:"additional_fees"`
	PaymentTerms    *string               `json:"payment_terms"`
	DeliveryTerms   *string               `json:"delivery_terms"`
	DueDate         *time.Time            `json:"due_date"`
}

// ToPatch translates the payload into the use case patch.
func (r UpdateInvoiceRequest) ToPatch() usecase.UpdateInvoicePatch {
	p := usecase.UpdateInvoicePatch{
		NegotiatedPrice: r.NegotiatedPrice,
		Currency:        r.Currency,
		TaxAmount:       r.TaxAmount,
		ShippingAmount:  r.ShippingAmount,
		AdditionalFees:  r.AdditionalFees,
		PaymentTerms:    r.PaymentTerms,
		DeliveryTerms:   r.DeliveryTerms,
		DueDate:         r.DueDate,
	}
	if r.Items != nil {
		items := toInvoiceItems(*r.Items)
		p.Items = &items
	}
	return p
}

// ViewInvoiceRequest carries the capability token for the buyer view.
type ViewInvoiceRequest struct {
	InvoiceToken string `json:"invoice_token" binding:"required"`
}

func toInvoiceItems(in []InvoiceItemRequest) []entities.InvoiceItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.InvoiceItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}
