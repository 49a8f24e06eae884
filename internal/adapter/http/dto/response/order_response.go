package response

import (
	"time"

	"sellerhub/internal/domain/entities"
)

type AddressSnapshotResponse struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type OrderResponse struct {
	ID              string                  `json:"id"`
	OrderNumber     string                  `json:"order_number"`
	QuotationID     string                  `json:"quotation_id"`
	InvoiceID       string                  `json:"invoice_id"`
	ThreadID        string                  `json:"thread_id"`
	Kind            string                  `json:"kind"`
	FinalPrice      float64                 `json:"final_price"`
	Currency        string                  `json:"currency"`
	ShippingAddress AddressSnapshotResponse `json:"shipping_address"`
	BillingAddress  AddressSnapshotResponse `json:"billing_address"`
	Status          string                  `json:"status"`
	TrackingNumber  string                  `json:"tracking_number,omitempty"`
	ShippedAt       *time.Time              `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time              `json:"delivered_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		QuotationID:     o.QuotationID,
		InvoiceID:       o.InvoiceID,
		ThreadID:        o.ThreadID,
		Kind:            string(o.Kind),
		FinalPrice:      o.FinalPrice,
		Currency:        o.Currency,
		ShippingAddress: fromAddressSnapshot(o.ShippingAddress),
		BillingAddress:  fromAddressSnapshot(o.BillingAddress),
		Status:          string(o.Status),
		TrackingNumber:  o.TrackingNumber,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if !o.ShippedAt.IsZero() {
		t := o.ShippedAt
		res.ShippedAt = &t
	}
	if !o.DeliveredAt.IsZero() {
		t := o.DeliveredAt
		res.DeliveredAt = &t
	}
	return res
}

func fromAddressSnapshot(a entities.AddressSnapshot) AddressSnapshotResponse {
	return AddressSnapshotResponse{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
