package entities

import "testing"

func TestAcceptTransitionFor(t *testing.T) {
	cases := []struct {
		status QuotationStatus
		want   AcceptTransition
	}{
		{QuotationStatusPending, TransitionDirectAccept},
		{QuotationStatusNegotiation, TransitionNegotiatedAccept},
		{QuotationStatusAccepted, TransitionNone},
		{QuotationStatusRejected, TransitionNone},
	}
	for _, tc := range cases {
		if got := AcceptTransitionFor(tc.status); got != tc.want {
			t.Fatalf("AcceptTransitionFor(%s) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestCanTransitionPhase(t *testing.T) {
	allowed := []struct{ from, to ThreadPhase }{
		{PhaseNegotiation, PhaseInvoiceSent},
		{PhaseNegotiation, PhaseOrderCreated},
		{PhaseInvoiceSent, PhaseInvoiceAccepted},
		{PhaseInvoiceSent, PhaseInvoiceRejected},
		{PhaseInvoiceSent, PhaseNegotiation},
		{PhaseInvoiceAccepted, PhaseOrderCreated},
		{PhaseInvoiceRejected, PhaseInvoiceSent},
		{PhaseOrderCreated, PhaseCompleted},
	}
	for _, tc := range allowed {
		if !CanTransitionPhase(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to ThreadPhase }{
		{PhaseNegotiation, PhaseCompleted},
		{PhaseInvoiceAccepted, PhaseNegotiation},
		{PhaseOrderCreated, PhaseNegotiation},
		{PhaseCompleted, PhaseNegotiation},
		{PhaseCompleted, PhaseOrderCreated},
	}
	for _, tc := range denied {
		if CanTransitionPhase(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestCanResetToNegotiation(t *testing.T) {
	if !CanResetToNegotiation(PhaseInvoiceRejected) {
		t.Fatal("invoice_rejected must allow the reset")
	}
	for _, from := range []ThreadPhase{PhaseNegotiation, PhaseInvoiceSent, PhaseInvoiceAccepted, PhaseOrderCreated, PhaseCompleted} {
		if CanResetToNegotiation(from) {
			t.Fatalf("expected reset from %s to be rejected", from)
		}
	}
}
