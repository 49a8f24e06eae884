package entities

import (
	"fmt"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusAccepted InvoiceStatus = "accepted"
	InvoiceStatusRejected InvoiceStatus = "rejected"
)

// PartyBlock is a display snapshot of one party, captured when the invoice
// is issued. Later profile edits intentionally do not change issued
// invoices.
type PartyBlock struct {
	Name        string
	CompanyName string
	Email       string
	AddressLine string
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// InvoiceTerms holds the free-text payment/delivery terms shown to the
// buyer.
type InvoiceTerms struct {
	Payment  string
	Delivery string
}

// Invoice is a financial offer derived from a quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - tables: invoices / service_invoices per ItemKind
//
// A superseded pending invoice is deleted outright, not archived. Number is
// globally unique and sequence-derived. ExpiresAt is the business expiry of
// the offer itself, independent of any capability token's lifetime.
type Invoice struct {
	ID              string
	QuotationID     string
	SellerID        string
	BuyerID         string
	ThreadID        string
	Kind            ItemKind
	Number          string
	InvoiceDate     time.Time
	DueDate         time.Time
	Currency        string
	SellerBlock     PartyBlock
	BuyerBlock      PartyBlock
	Items           []InvoiceItem
	NegotiatedPrice float64
	Subtotal        float64
	TaxAmount       float64
	ShippingAmount  float64
	AdditionalFees  float64
	Total           float64
	Terms           InvoiceTerms
	Status          InvoiceStatus
	ViewedByBuyer   bool
	ViewedAt        time.Time
	ExpiresAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecomputeTotals derives line totals, subtotal and total. The subtotal is
// the sum of line items when any exist, otherwise the negotiated price.
func (inv *Invoice) RecomputeTotals() {
	if len(inv.Items) > 0 {
		subtotal := 0.0
		for i := range inv.Items {
			inv.Items[i].Total = float64(inv.Items[i].Quantity) * inv.Items[i].UnitPrice
			subtotal += inv.Items[i].Total
		}
		inv.Subtotal = subtotal
	} else {
		inv.Subtotal = inv.NegotiatedPrice
	}
	inv.Total = inv.Subtotal + inv.TaxAmount + inv.ShippingAmount + inv.AdditionalFees
}

// Expired reports whether the invoice's own business expiry has elapsed.
func (inv Invoice) Expired(now time.Time) bool {
	return !inv.ExpiresAt.IsZero() && now.After(inv.ExpiresAt)
}

// FormatInvoiceNumber renders the canonical INV-<year>-NNNNNN number for a
// sequence value.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%06d", year, seq)
}
