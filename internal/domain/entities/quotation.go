package entities

import "time"

// QuotationStatus is the buyer-visible lifecycle of a price request. It is
// coarser than the deal thread phase: a quotation under invoice negotiation
// is already "accepted" even though the thread may still move backward.
type QuotationStatus string

const (
	QuotationStatusPending     QuotationStatus = "pending"
	QuotationStatusNegotiation QuotationStatus = "negotiation"
	QuotationStatusAccepted    QuotationStatus = "accepted"
	QuotationStatusRejected    QuotationStatus = "rejected"
)

// Terminal reports whether the status admits no further seller action.
func (s QuotationStatus) Terminal() bool {
	return s == QuotationStatusAccepted || s == QuotationStatusRejected
}

// Quotation is a buyer's price request for one item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - tables: quotations / service_quotations per ItemKind
//
// Quotations are created by the buyer-side system; this service only
// mutates their status and never deletes them. All mutations require the
// acting seller to match SellerID.
type Quotation struct {
	ID         string
	BuyerID    string
	SellerID   string
	ItemID     string
	Kind       ItemKind
	Quantity   int
	MinPrice   float64
	MaxPrice   float64
	Currency   string
	Deadline   time.Time
	Attributes map[string]string
	Status     QuotationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
