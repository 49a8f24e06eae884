package entities

import "time"

type NotificationType string

const (
	NotificationQuotationAccepted NotificationType = "quotation_accepted"
	NotificationQuotationRejected NotificationType = "quotation_rejected"
	NotificationNegotiationOpened NotificationType = "negotiation_opened"
	NotificationInvoiceSent       NotificationType = "invoice_sent"
	NotificationOrderStatus       NotificationType = "order_status"
)

// Notification is the buyer-facing record persisted by the side-effect
// channel after a saga commit. Delivery is best-effort and at-most-once.
type Notification struct {
	ID          string
	UserID      string
	Type        NotificationType
	Title       string
	Body        string
	ReferenceID string
	Read        bool
	CreatedAt   time.Time
}
