package handlers

import (
	"errors"
	"net/http"

	"sellerhub/internal/usecase"
	"sellerhub/internal/usecase/interfaces"
	"sellerhub/pkg"
)

// mapDealError translates use case sentinels into the HTTP error taxonomy
// shared by every deal endpoint.
func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidSellerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceAmount):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_AMOUNT", "Invoice amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingBuyerAddress):
		return pkg.NewDomainErrorSimple("BUYER_ADDRESS_MISSING", "Buyer has no default address on file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Invoice belongs to another seller", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Order belongs to another seller", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotationTerminal):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_PROCESSED", "Quotation was already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrActiveInvoicePending):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PENDING", "An invoice is already awaiting the buyer", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalPhase):
		return pkg.NewDomainErrorSimple("ILLEGAL_PHASE", "Deal is not in a state that allows this action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotPending):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PENDING", "Invoice was already answered", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalOrderStatus):
		return pkg.NewDomainErrorSimple("ILLEGAL_ORDER_STATUS", "Order cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "The deal changed while processing, retry", http.StatusConflict)
	case errors.Is(err, interfaces.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Invoice link expired, request a new one", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrTokenInvalid):
		return pkg.NewDomainErrorSimple("TOKEN_INVALID", "Invoice link is not valid", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceExpired):
		return pkg.NewDomainErrorSimple("INVOICE_EXPIRED", "Invoice offer has expired", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
