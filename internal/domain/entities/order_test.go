package entities

import (
	"strings"
	"testing"
	"time"
)

func TestCanTransitionOrder(t *testing.T) {
	t.Run("single forward steps", func(t *testing.T) {
		steps := []struct{ from, to OrderStatus }{
			{OrderStatusPending, OrderStatusConfirmed},
			{OrderStatusConfirmed, OrderStatusProcessing},
			{OrderStatusProcessing, OrderStatusReadyToShip},
			{OrderStatusReadyToShip, OrderStatusShipped},
			{OrderStatusShipped, OrderStatusInTransit},
			{OrderStatusInTransit, OrderStatusOutForDelivery},
			{OrderStatusOutForDelivery, OrderStatusDelivered},
		}
		for _, tc := range steps {
			if !CanTransitionOrder(tc.from, tc.to) {
				t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
			}
		}
	})

	t.Run("skipping and reversing are rejected", func(t *testing.T) {
		for _, tc := range []struct{ from, to OrderStatus }{
			{OrderStatusPending, OrderStatusProcessing},
			{OrderStatusConfirmed, OrderStatusShipped},
			{OrderStatusShipped, OrderStatusReadyToShip},
			{OrderStatusDelivered, OrderStatusDelivered},
		} {
			if CanTransitionOrder(tc.from, tc.to) {
				t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
			}
		}
	})

	t.Run("side exits from any live state", func(t *testing.T) {
		for _, from := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusOutForDelivery} {
			if !CanTransitionOrder(from, OrderStatusCancelled) {
				t.Fatalf("expected %s -> cancelled to be allowed", from)
			}
			if !CanTransitionOrder(from, OrderStatusReturned) {
				t.Fatalf("expected %s -> returned to be allowed", from)
			}
		}
	})

	t.Run("terminal states absorb", func(t *testing.T) {
		for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned} {
			for _, to := range []OrderStatus{OrderStatusConfirmed, OrderStatusCancelled, OrderStatusReturned} {
				if CanTransitionOrder(from, to) {
					t.Fatalf("expected %s -> %s to be rejected", from, to)
				}
			}
		}
	})
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	n := NewOrderNumber(now)
	if !strings.HasPrefix(n, "ORD-20260831-") {
		t.Fatalf("unexpected prefix in %q", n)
	}
	if len(n) != len("ORD-20260831-")+8 {
		t.Fatalf("unexpected suffix length in %q", n)
	}
	if n == NewOrderNumber(now) {
		t.Fatal("order numbers must not collide for the same instant")
	}
}
