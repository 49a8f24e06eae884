package response

import (
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase"
)

type PartyBlockResponse struct {
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	AddressLine string `json:"address_line,omitempty"`
}

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// GenerateInvoiceResponse is the seller-facing result of issuing an
// invoice. InvoiceLink is the token-bearing path a buyer can open without
// a session.
type GenerateInvoiceResponse struct {
	InvoiceID   string  `json:"invoice_id"`
	InvoiceLink string  `json:"invoice_link"`
	TotalAmount float64 `json:"total_amount"`
}

func FromGenerateResult(res usecase.GenerateInvoiceResult) GenerateInvoiceResponse {
	return GenerateInvoiceResponse{
		InvoiceID:   res.InvoiceID,
		InvoiceLink: "/invoice/view?token=" + res.Token,
		TotalAmount: res.Total,
	}
}

type InvoiceResponse struct {
	ID              string                `json:"id"`
	QuotationID     string                `json:"quotation_id"`
	ThreadID        string                `json:"thread_id"`
	Kind            string                `json:"kind"`
	Number          string                `json:"number"`
	InvoiceDate     time.Time             `json:"invoice_date"`
	DueDate         time.Time             `json:"due_date"`
	Currency        string                `json:"currency"`
	SellerBlock     PartyBlockResponse    `json:"seller"`
	BuyerBlock      PartyBlockResponse    `json:"buyer"`
	Items           []InvoiceItemResponse `json:"items,omitempty"`
	NegotiatedPrice float64               `json:"negotiated_price"`
	Subtotal        float64               `json:"subtotal"`
	TaxAmount       float64               `json:"tax_amount"`
	ShippingAmount  float64               `json:"shipping_amount"`
	AdditionalFees  float64               `json:"additional_fees"`
	Total           float64               `json:"total"`
	PaymentTerms    string                `json:"payment_terms,omitempty"`
	DeliveryTerms   string                `json:"delivery_terms,omitempty"`
	Status          string                `json:"status"`
	ViewedByBuyer   bool                  `json:"viewed_by_buyer"`
	ExpiresAt       *time.Time            `json:"expires_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:              inv.ID,
		QuotationID:     inv.QuotationID,
		ThreadID:        inv.ThreadID,
		Kind:            string(inv.Kind),
		Number:          inv.Number,
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		Currency:        inv.Currency,
		SellerBlock:     fromPartyBlock(inv.SellerBlock),
		BuyerBlock:      fromPartyBlock(inv.BuyerBlock),
		NegotiatedPrice: inv.NegotiatedPrice,
		Subtotal:        inv.Subtotal,
		TaxAmount:       inv.TaxAmount,
		ShippingAmount:  inv.ShippingAmount,
		AdditionalFees:  inv.AdditionalFees,
		Total:           inv.Total,
		PaymentTerms:    inv.Terms.Payment,
		DeliveryTerms:   inv.Terms.Delivery,
		Status:          string(inv.Status),
		ViewedByBuyer:   inv.ViewedByBuyer,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
	if !inv.ExpiresAt.IsZero() {
		exp := inv.ExpiresAt
		res.ExpiresAt = &exp
	}
	for _, it := range inv.Items {
		res.Items = append(res.Items, InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return res
}

func fromPartyBlock(p entities.PartyBlock) PartyBlockResponse {
	return PartyBlockResponse{
		Name:        p.Name,
		CompanyName: p.CompanyName,
		Email:       p.Email,
		AddressLine: p.AddressLine,
	}
}
