package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a linear delivery pipeline with two absorbing side exits.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusReadyToShip    OrderStatus = "ready_to_ship"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusInTransit      OrderStatus = "in_transit"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusReturned       OrderStatus = "returned"
)

// orderPipeline is the forward order of the delivery states.
var orderPipeline = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusReadyToShip,
	OrderStatusShipped,
	OrderStatusInTransit,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusReturned
}

func pipelineIndex(s OrderStatus) int {
	for i, st := range orderPipeline {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransitionOrder reports whether from -> to is a legal order move:
// exactly one step forward along the pipeline, or a jump to cancelled
// (before delivery) / returned (after delivery started) from any
// non-terminal state.
func CanTransitionOrder(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == OrderStatusCancelled || to == OrderStatusReturned {
		return true
	}
	fi, ti := pipelineIndex(from), pipelineIndex(to)
	if fi < 0 || ti < 0 {
		return false
	}
	return ti == fi+1
}

// AddressSnapshot is the shipping/billing address captured when the order
// was created.
type AddressSnapshot struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Order is created exactly once, at the moment an invoice is accepted.
//
// Storage model (DynamoDB):
//   - PK: id
type Order struct {
	ID              string
	OrderNumber     string
	QuotationID     string
	InvoiceID       string
	ThreadID        string
	BuyerID         string
	SellerID        string
	Kind            ItemKind
	FinalPrice      float64
	Currency        string
	ShippingAddress AddressSnapshot
	BillingAddress  AddressSnapshot
	Status          OrderStatus
	TrackingNumber  string
	ShippedAt       time.Time
	DeliveredAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrderNumber mints the human-facing order identifier.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + now.UTC().Format("20060102") + "-" + suffix
}
