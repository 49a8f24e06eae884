package entities

import (
	"testing"
	"time"
)

func TestInvoiceRecomputeTotals(t *testing.T) {
	t.Run("negotiated price without items", func(t *testing.T) {
		inv := Invoice{NegotiatedPrice: 500, TaxAmount: 50, ShippingAmount: 20, AdditionalFees: 5}
		inv.RecomputeTotals()
		if inv.Subtotal != 500 {
			t.Fatalf("expected subtotal 500, got %v", inv.Subtotal)
		}
		if inv.Total != 575 {
			t.Fatalf("expected total 575, got %v", inv.Total)
		}
	})

	t.Run("items override the negotiated price", func(t *testing.T) {
		inv := Invoice{
			NegotiatedPrice: 999,
			TaxAmount:       10,
			Items: []InvoiceItem{
				{Description: "widget", Quantity: 3, UnitPrice: 100},
				{Description: "setup", Quantity: 1, UnitPrice: 80},
			},
		}
		inv.RecomputeTotals()
		if inv.Items[0].Total != 300 || inv.Items[1].Total != 80 {
			t.Fatalf("unexpected line totals: %+v", inv.Items)
		}
		if inv.Subtotal != 380 || inv.Total != 390 {
			t.Fatalf("unexpected totals: subtotal=%v total=%v", inv.Subtotal, inv.Total)
		}
	})
}

func TestInvoiceExpired(t *testing.T) {
	now := time.Now().UTC()
	inv := Invoice{ExpiresAt: now.Add(time.Hour)}
	if inv.Expired(now) {
		t.Fatal("invoice inside its window must not be expired")
	}
	if !inv.Expired(now.Add(2 * time.Hour)) {
		t.Fatal("invoice past its window must be expired")
	}
	if (Invoice{}).Expired(now) {
		t.Fatal("zero expiry means no business expiry")
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	if got := FormatInvoiceNumber(2026, 7); got != "INV-2026-000007" {
		t.Fatalf("unexpected number %q", got)
	}
	if got := FormatInvoiceNumber(2026, 1234567); got != "INV-2026-1234567" {
		t.Fatalf("expected the sequence to widen past six digits, got %q", got)
	}
}
