package usecase

import "errors"

// Sentinel errors shared by the deal saga use cases. Handlers map them to
// the HTTP error taxonomy. "Not found" deliberately covers ownership
// mismatches on quotation lookups so non-owners cannot probe existence.
var (
	ErrQuotationNotFound    = errors.New("quotation not found or already processed")
	ErrQuotationTerminal    = errors.New("quotation already in a terminal state")
	ErrInvalidQuotationID   = errors.New("invalid quotation id")
	ErrInvalidSellerID      = errors.New("invalid seller id")
	ErrMissingBuyerAddress  = errors.New("buyer default address missing")
	ErrIllegalPhase         = errors.New("illegal thread phase for this operation")
	ErrActiveInvoicePending = errors.New("an active invoice is already pending on this thread")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceForbidden     = errors.New("invoice does not belong to the caller")
	ErrInvoiceNotPending    = errors.New("invoice is no longer pending")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvoiceExpired       = errors.New("invoice offer has expired")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderForbidden       = errors.New("order does not belong to the caller")
	ErrIllegalOrderStatus   = errors.New("illegal order status transition")
	ErrInvalidOrderID       = errors.New("invalid order id")
)
