package usecase

import (
	"context"
	"errors"
	"testing"

	"sellerhub/internal/domain/entities"
	mock_interfaces "sellerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders     *mock_interfaces.MockIOrderRepository
	threads    *mock_interfaces.MockIDealThreadRepository
	messages   *mock_interfaces.MockIMessageRepository
	tx         *mock_interfaces.MockITxRunner
	dispatcher *mock_interfaces.MockISideEffectDispatcher
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderMocks{
		orders:     mock_interfaces.NewMockIOrderRepository(ctrl),
		threads:    mock_interfaces.NewMockIDealThreadRepository(ctrl),
		messages:   mock_interfaces.NewMockIMessageRepository(ctrl),
		tx:         mock_interfaces.NewMockITxRunner(ctrl),
		dispatcher: mock_interfaces.NewMockISideEffectDispatcher(ctrl),
	}
	uc := NewOrderUseCase(OrderDeps{
		Orders:     m.orders,
		Threads:    m.threads,
		Messages:   m.messages,
		Tx:         m.tx,
		Dispatcher: m.dispatcher,
	})
	return uc, m
}

func confirmedOrder() entities.Order {
	return entities.Order{
		ID:          "ord-1",
		OrderNumber: "ORD-2026-000001",
		QuotationID: "q-1",
		ThreadID:    "th-1",
		BuyerID:     "buyer-1",
		SellerID:    "seller-1",
		Kind:        entities.ItemKindProduct,
		FinalPrice:  500,
		Currency:    "USD",
		Status:      entities.OrderStatusConfirmed,
	}
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusProcessing})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("foreign order is forbidden", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := confirmedOrder()
		o.SellerID = "someone-else"
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		_, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusProcessing})
		if !errors.Is(err, ErrOrderForbidden) {
			t.Fatalf("expected ErrOrderForbidden, got %v", err)
		}
	})

	t.Run("skipping pipeline steps is illegal", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmedOrder(), nil)

		_, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusShipped})
		if !errors.Is(err, ErrIllegalOrderStatus) {
			t.Fatalf("expected ErrIllegalOrderStatus, got %v", err)
		}
	})

	t.Run("terminal order cannot move", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := confirmedOrder()
		o.Status = entities.OrderStatusDelivered
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		_, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusCancelled})
		if !errors.Is(err, ErrIllegalOrderStatus) {
			t.Fatalf("expected ErrIllegalOrderStatus, got %v", err)
		}
	})

	t.Run("one step forward with a thread note", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		th := negotiationThread()
		th.Phase = entities.PhaseOrderCreated
		tx := &struct{}{}
		var savedOrder entities.Order
		var savedThread entities.DealThread

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmedOrder(), nil)
		m.threads.EXPECT().GetByID(gomock.Any(), "th-1").Return(th, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.orders.EXPECT().TxSave(tx, gomock.AssignableToTypeOf(entities.Order{}), entities.OrderStatusConfirmed).DoAndReturn(
			func(_ any, saved entities.Order, _ entities.OrderStatus) error {
				savedOrder = saved
				return nil
			},
		)
		m.threads.EXPECT().TxSave(tx, gomock.AssignableToTypeOf(entities.DealThread{}), entities.PhaseOrderCreated).DoAndReturn(
			func(_ any, saved entities.DealThread, _ entities.ThreadPhase) error {
				savedThread = saved
				return nil
			},
		)
		m.messages.EXPECT().TxCreate(tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		out, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusProcessing})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.OrderStatusProcessing || savedOrder.Status != entities.OrderStatusProcessing {
			t.Fatalf("expected processing, got %s / %s", out.Status, savedOrder.Status)
		}
		if savedThread.Phase != entities.PhaseOrderCreated {
			t.Fatalf("thread phase must not change mid pipeline, got %s", savedThread.Phase)
		}
		if savedThread.UnreadBy != "buyer-1" || savedThread.LastMessage == nil {
			t.Fatalf("expected thread note for the buyer: %+v", savedThread)
		}
	})

	t.Run("shipped stamps the timestamp and tracking number", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := confirmedOrder()
		o.Status = entities.OrderStatusReadyToShip
		th := negotiationThread()
		th.Phase = entities.PhaseOrderCreated
		tx := &struct{}{}
		var savedOrder entities.Order

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		m.threads.EXPECT().GetByID(gomock.Any(), "th-1").Return(th, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.orders.EXPECT().TxSave(tx, gomock.Any(), entities.OrderStatusReadyToShip).DoAndReturn(
			func(_ any, saved entities.Order, _ entities.OrderStatus) error {
				savedOrder = saved
				return nil
			},
		)
		m.threads.EXPECT().TxSave(tx, gomock.Any(), entities.PhaseOrderCreated).Return(nil)
		m.messages.EXPECT().TxCreate(tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		out, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{
			Status:         entities.OrderStatusShipped,
			TrackingNumber: " TRK-42 ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ShippedAt.IsZero() || savedOrder.ShippedAt.IsZero() {
			t.Fatalf("expected shipped timestamp: %+v", out)
		}
		if out.TrackingNumber != "TRK-42" {
			t.Fatalf("expected trimmed tracking number, got %q", out.TrackingNumber)
		}
	})

	t.Run("delivered completes the thread", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := confirmedOrder()
		o.Status = entities.OrderStatusOutForDelivery
		th := negotiationThread()
		th.Phase = entities.PhaseOrderCreated
		tx := &struct{}{}
		var savedThread entities.DealThread

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		m.threads.EXPECT().GetByID(gomock.Any(), "th-1").Return(th, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.orders.EXPECT().TxSave(tx, gomock.Any(), entities.OrderStatusOutForDelivery).Return(nil)
		m.threads.EXPECT().TxSave(tx, gomock.Any(), entities.PhaseOrderCreated).DoAndReturn(
			func(_ any, saved entities.DealThread, _ entities.ThreadPhase) error {
				savedThread = saved
				return nil
			},
		)
		m.messages.EXPECT().TxCreate(tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, fx entities.SideEffects) {
				if len(fx.Notifications) != 1 || fx.Notifications[0].Type != entities.NotificationOrderStatus {
					t.Fatalf("expected an order status notification: %+v", fx)
				}
			},
		)

		out, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusDelivered})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DeliveredAt.IsZero() {
			t.Fatalf("expected delivered timestamp: %+v", out)
		}
		if savedThread.Phase != entities.PhaseCompleted {
			t.Fatalf("expected completed thread, got %s", savedThread.Phase)
		}
	})

	t.Run("cancellation without a thread still notifies", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := confirmedOrder()
		o.ThreadID = ""
		tx := &struct{}{}

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		m.threads.EXPECT().GetByID(gomock.Any(), "").Return(entities.DealThread{}, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.orders.EXPECT().TxSave(tx, gomock.Any(), entities.OrderStatusConfirmed).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, fx entities.SideEffects) {
				if fx.ThreadID != "" || len(fx.Messages) != 0 {
					t.Fatalf("no thread effects expected: %+v", fx)
				}
			},
		)

		out, err := uc.UpdateStatus(context.Background(), "seller-1", "ord-1", UpdateOrderStatusInput{Status: entities.OrderStatusCancelled})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancelled, got %s", out.Status)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("owned order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmedOrder(), nil)

		out, err := uc.GetByID(context.Background(), "seller-1", "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID != "ord-1" {
			t.Fatalf("unexpected order: %+v", out)
		}
	})

	t.Run("foreign order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := confirmedOrder()
		o.SellerID = "someone-else"
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		_, err := uc.GetByID(context.Background(), "seller-1", "ord-1")
		if !errors.Is(err, ErrOrderForbidden) {
			t.Fatalf("expected ErrOrderForbidden, got %v", err)
		}
	})
}
