package entities

import "time"

// ThreadPhase is the authoritative workflow state of a deal. The quotation
// status is derived from it, never the other way around.
type ThreadPhase string

const (
	PhaseNegotiation     ThreadPhase = "negotiation"
	PhaseInvoiceSent     ThreadPhase = "invoice_sent"
	PhaseInvoiceAccepted ThreadPhase = "invoice_accepted"
	PhaseInvoiceRejected ThreadPhase = "invoice_rejected"
	PhaseOrderCreated    ThreadPhase = "order_created"
	PhaseCompleted       ThreadPhase = "completed"
)

// ActiveInvoiceStatus is the sub-status of the invoice a thread currently
// tracks. At most one invoice per thread may be pending at a time.
type ActiveInvoiceStatus string

const (
	ActiveInvoicePending  ActiveInvoiceStatus = "pending"
	ActiveInvoiceAccepted ActiveInvoiceStatus = "accepted"
	ActiveInvoiceRejected ActiveInvoiceStatus = "rejected"
	ActiveInvoiceExpired  ActiveInvoiceStatus = "expired"
)

// ActiveInvoice is the sub-document tracking the invoice of the current
// negotiation round.
type ActiveInvoice struct {
	InvoiceID   string
	Status      ActiveInvoiceStatus
	Token       string
	CreatedAt   time.Time
	RespondedAt time.Time
}

// LastMessage is a denormalized pointer to the newest thread message so
// chat clients can render previews without loading the message table.
type LastMessage struct {
	MessageID string
	SenderID  string
	Content   string
	SentAt    time.Time
}

// DealThread is the per-quotation conversation and workflow record, 1:1
// with its quotation and created lazily on the first seller action.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI quotation_id-index: quotation_id
//
// Phase moves monotonically forward except for the explicit
// invoice_rejected -> negotiation reset. Threads are never deleted.
type DealThread struct {
	ID            string
	BuyerID       string
	SellerID      string
	QuotationID   string
	Kind          ItemKind
	Phase         ThreadPhase
	ActiveInvoice *ActiveInvoice
	OrderID       string
	LastMessage   *LastMessage
	UnreadBy      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPendingInvoice reports whether the thread tracks an invoice still
// awaiting the buyer's response.
func (t DealThread) HasPendingInvoice() bool {
	return t.ActiveInvoice != nil && t.ActiveInvoice.Status == ActiveInvoicePending
}

// CanGenerateInvoice reports whether a new invoice round may start in the
// current phase.
func (t DealThread) CanGenerateInvoice() bool {
	return t.Phase == PhaseNegotiation || t.Phase == PhaseInvoiceRejected
}
