package response

import "sellerhub/internal/usecase"

// QuotationActionResponse reports the outcome of a quotation decision.
// OrderID and InvoiceID are only set when the accept finalized the deal
// directly at the quoted maximum price.
type QuotationActionResponse struct {
	Message   string `json:"message"`
	OrderID   string `json:"order_id,omitempty"`
	InvoiceID string `json:"invoice_id,omitempty"`
	ChatID    string `json:"chat_id,omitempty"`
}

func FromAcceptResult(res usecase.AcceptQuotationResult, message string) QuotationActionResponse {
	return QuotationActionResponse{
		Message:   message,
		OrderID:   res.OrderID,
		InvoiceID: res.InvoiceID,
		ChatID:    res.ThreadID,
	}
}
