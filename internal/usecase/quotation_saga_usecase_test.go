package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerhub/internal/domain/entities"
	mock_interfaces "sellerhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type sagaMocks struct {
	quotations *mock_interfaces.MockIQuotationRepository
	threads    *mock_interfaces.MockIDealThreadRepository
	invoices   *mock_interfaces.MockIInvoiceRepository
	orders     *mock_interfaces.MockIOrderRepository
	messages   *mock_interfaces.MockIMessageRepository
	addresses  *mock_interfaces.MockIAddressRepository
	sequences  *mock_interfaces.MockISequenceRepository
	tx         *mock_interfaces.MockITxRunner
	dispatcher *mock_interfaces.MockISideEffectDispatcher
}

func newSagaUseCase(t *testing.T, kind entities.ItemKind) (*QuotationSagaUseCase, sagaMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sagaMocks{
		quotations: mock_interfaces.NewMockIQuotationRepository(ctrl),
		threads:    mock_interfaces.NewMockIDealThreadRepository(ctrl),
		invoices:   mock_interfaces.NewMockIInvoiceRepository(ctrl),
		orders:     mock_interfaces.NewMockIOrderRepository(ctrl),
		messages:   mock_interfaces.NewMockIMessageRepository(ctrl),
		addresses:  mock_interfaces.NewMockIAddressRepository(ctrl),
		sequences:  mock_interfaces.NewMockISequenceRepository(ctrl),
		tx:         mock_interfaces.NewMockITxRunner(ctrl),
		dispatcher: mock_interfaces.NewMockISideEffectDispatcher(ctrl),
	}
	uc := NewQuotationSagaUseCase(kind, QuotationSagaDeps{
		Quotations: m.quotations,
		Threads:    m.threads,
		Invoices:   m.invoices,
		Orders:     m.orders,
		Messages:   m.messages,
		Addresses:  m.addresses,
		Sequences:  m.sequences,
		Tx:         m.tx,
		Dispatcher: m.dispatcher,
	})
	return uc, m
}

func pendingQuotation() entities.Quotation {
	return entities.Quotation{
		ID:       "q-1",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		ItemID:   "item-1",
		Kind:     entities.ItemKindProduct,
		Quantity: 2,
		MinPrice: 300,
		MaxPrice: 500,
		Currency: "USD",
		Status:   entities.QuotationStatusPending,
	}
}

func defaultAddress(id string, typ entities.AddressType) entities.Address {
	return entities.Address{
		ID:         id,
		UserID:     "buyer-1",
		Type:       typ,
		IsDefault:  true,
		Name:       "Alex Buyer",
		Line1:      "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
}

func TestQuotationSagaUseCase_Accept(t *testing.T) {
	t.Run("invalid seller id", func(t *testing.T) {
		uc, _ := newSagaUseCase(t, entities.ItemKindProduct)
		_, err := uc.Accept(context.Background(), "  ", "q-1")
		if !errors.Is(err, ErrInvalidSellerID) {
			t.Fatalf("expected ErrInvalidSellerID, got %v", err)
		}
	})

	t.Run("invalid quotation id", func(t *testing.T) {
		uc, _ := newSagaUseCase(t, entities.ItemKindProduct)
		_, err := uc.Accept(context.Background(), "seller-1", " ")
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("ownership mismatch reads as not found", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		q.SellerID = "someone-else"
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Accept(context.Background(), "seller-1", "q-1")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("terminal quotation", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		q.Status = entities.QuotationStatusAccepted
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Accept(context.Background(), "seller-1", "q-1")
		if !errors.Is(err, ErrQuotationTerminal) {
			t.Fatalf("expected ErrQuotationTerminal, got %v", err)
		}
	})

	t.Run("negotiated accept only flips status", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		q.Status = entities.QuotationStatusNegotiation

		tx := &struct{}{}
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusNegotiation, entities.QuotationStatusAccepted, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.AssignableToTypeOf(entities.SideEffects{})).Do(
			func(_ context.Context, fx entities.SideEffects) {
				if len(fx.Notifications) != 1 || fx.Notifications[0].Type != entities.NotificationQuotationAccepted {
					t.Fatalf("unexpected side effects: %+v", fx)
				}
				if len(fx.Messages) != 0 {
					t.Fatalf("negotiated accept must not emit messages: %+v", fx)
				}
			},
		)

		res, err := uc.Accept(context.Background(), "seller-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Transition != entities.TransitionNegotiatedAccept {
			t.Fatalf("expected negotiated accept, got %q", res.Transition)
		}
		if res.OrderID != "" || res.InvoiceID != "" {
			t.Fatalf("negotiated accept must not create documents: %+v", res)
		}
	})

	t.Run("direct accept finalizes at the maximum price", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		tx := &struct{}{}
		var createdOrder entities.Order
		var createdInvoice entities.Invoice
		var createdThread entities.DealThread

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusPending, entities.QuotationStatusAccepted, gomock.Any()).Return(nil)
		m.addresses.EXPECT().FindDefault(gomock.Any(), "buyer-1", entities.AddressTypeBilling).Return(defaultAddress("addr-b", entities.AddressTypeBilling), nil)
		m.addresses.EXPECT().FindDefault(gomock.Any(), "buyer-1", entities.AddressTypeShipping).Return(defaultAddress("addr-s", entities.AddressTypeShipping), nil)
		m.addresses.EXPECT().FindDefault(gomock.Any(), "seller-1", entities.AddressTypeBilling).Return(entities.Address{
			ID:         "addr-sl",
			UserID:     "seller-1",
			Type:       entities.AddressTypeBilling,
			IsDefault:  true,
			Name:       "Sam Seller",
			Line1:      "9 Market Rd",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		}, nil)
		m.threads.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.DealThread{}, nil)
		m.sequences.EXPECT().NextValue(gomock.Any(), "invoice_number").Return(int64(7), nil)
		m.threads.EXPECT().TxCreate(tx, gomock.AssignableToTypeOf(entities.DealThread{})).DoAndReturn(
			func(_ any, th entities.DealThread) error {
				createdThread = th
				return nil
			},
		)
		m.invoices.EXPECT().TxCreate(tx, gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ any, inv entities.Invoice) error {
				createdInvoice = inv
				return nil
			},
		)
		m.orders.EXPECT().TxCreate(tx, gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ any, o entities.Order) error {
				createdOrder = o
				return nil
			},
		)
		m.messages.EXPECT().TxCreate(tx, gomock.Any()).Return(nil).Times(3)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		res, err := uc.Accept(context.Background(), "seller-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Transition != entities.TransitionDirectAccept {
			t.Fatalf("expected direct accept, got %q", res.Transition)
		}
		if createdOrder.FinalPrice != 500 {
			t.Fatalf("order must finalize at the quoted maximum price, got %v", createdOrder.FinalPrice)
		}
		if createdOrder.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending order, got %s", createdOrder.Status)
		}
		if createdOrder.ShippingAddress.Line1 == "" || createdOrder.BillingAddress.Line1 == "" {
			t.Fatalf("expected address snapshots: %+v", createdOrder)
		}
		if createdInvoice.Status != entities.InvoiceStatusAccepted || createdInvoice.Total != 500 {
			t.Fatalf("unexpected invoice: %+v", createdInvoice)
		}
		if createdInvoice.Number != entities.FormatInvoiceNumber(time.Now().UTC().Year(), 7) {
			t.Fatalf("unexpected invoice number %q", createdInvoice.Number)
		}
		if createdInvoice.SellerBlock.Name != "Sam Seller" || createdInvoice.SellerBlock.AddressLine == "" {
			t.Fatalf("expected seller block snapshot: %+v", createdInvoice.SellerBlock)
		}
		if createdInvoice.BuyerBlock.Name != "Alex Buyer" {
			t.Fatalf("expected buyer block snapshot: %+v", createdInvoice.BuyerBlock)
		}
		if createdThread.Phase != entities.PhaseOrderCreated {
			t.Fatalf("expected order_created phase, got %s", createdThread.Phase)
		}
		if createdThread.ActiveInvoice == nil || createdThread.ActiveInvoice.Status != entities.ActiveInvoiceAccepted {
			t.Fatalf("expected accepted active invoice: %+v", createdThread.ActiveInvoice)
		}
		if res.OrderID != createdOrder.ID || res.InvoiceID != createdInvoice.ID || res.ThreadID != createdThread.ID {
			t.Fatalf("result ids do not match created documents: %+v", res)
		}
	})

	t.Run("missing default address leaves nothing behind", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		tx := &struct{}{}

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusPending, entities.QuotationStatusAccepted, gomock.Any()).Return(nil)
		m.addresses.EXPECT().FindDefault(gomock.Any(), "buyer-1", entities.AddressTypeBilling).Return(defaultAddress("addr-b", entities.AddressTypeBilling), nil)
		m.addresses.EXPECT().FindDefault(gomock.Any(), "buyer-1", entities.AddressTypeShipping).Return(entities.Address{}, nil)
		// No Commit expectation: the transaction must be abandoned.

		_, err := uc.Accept(context.Background(), "seller-1", "q-1")
		if !errors.Is(err, ErrMissingBuyerAddress) {
			t.Fatalf("expected ErrMissingBuyerAddress, got %v", err)
		}
	})

	t.Run("commit conflict surfaces", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		q.Status = entities.QuotationStatusNegotiation
		tx := &struct{}{}

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusNegotiation, entities.QuotationStatusAccepted, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(errors.New("conditional check failed"))

		_, err := uc.Accept(context.Background(), "seller-1", "q-1")
		if err == nil {
			t.Fatalf("expected commit error")
		}
	})
}

func TestQuotationSagaUseCase_Reject(t *testing.T) {
	t.Run("terminal quotation", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		q.Status = entities.QuotationStatusRejected
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		err := uc.Reject(context.Background(), "seller-1", "q-1")
		if !errors.Is(err, ErrQuotationTerminal) {
			t.Fatalf("expected ErrQuotationTerminal, got %v", err)
		}
	})

	t.Run("success notifies the buyer", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		tx := &struct{}{}

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusPending, entities.QuotationStatusRejected, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, fx entities.SideEffects) {
				if len(fx.Notifications) != 1 || fx.Notifications[0].Type != entities.NotificationQuotationRejected {
					t.Fatalf("unexpected side effects: %+v", fx)
				}
			},
		)

		if err := uc.Reject(context.Background(), "seller-1", "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationSagaUseCase_Negotiate(t *testing.T) {
	t.Run("only pending quotations can enter negotiation", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		q.Status = entities.QuotationStatusNegotiation
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Negotiate(context.Background(), "seller-1", "q-1")
		if !errors.Is(err, ErrQuotationTerminal) {
			t.Fatalf("expected ErrQuotationTerminal, got %v", err)
		}
	})

	t.Run("creates the thread on first negotiation", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindService)
		q := pendingQuotation()
		q.Kind = entities.ItemKindService
		tx := &struct{}{}
		var createdThread entities.DealThread

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.threads.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.DealThread{}, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusPending, entities.QuotationStatusNegotiation, gomock.Any()).Return(nil)
		m.threads.EXPECT().TxCreate(tx, gomock.AssignableToTypeOf(entities.DealThread{})).DoAndReturn(
			func(_ any, th entities.DealThread) error {
				createdThread = th
				return nil
			},
		)
		m.messages.EXPECT().TxCreate(tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		threadID, err := uc.Negotiate(context.Background(), "seller-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if threadID == "" || threadID != createdThread.ID {
			t.Fatalf("expected the new thread id, got %q", threadID)
		}
		if createdThread.Phase != entities.PhaseNegotiation {
			t.Fatalf("expected negotiation phase, got %s", createdThread.Phase)
		}
		if createdThread.Kind != entities.ItemKindService {
			t.Fatalf("expected service thread, got %s", createdThread.Kind)
		}
		if createdThread.UnreadBy != "buyer-1" {
			t.Fatalf("thread must be marked unread for the buyer: %+v", createdThread)
		}
	})

	t.Run("reuses an existing thread", func(t *testing.T) {
		uc, m := newSagaUseCase(t, entities.ItemKindProduct)
		q := pendingQuotation()
		existing := entities.DealThread{
			ID:          "th-1",
			BuyerID:     "buyer-1",
			SellerID:    "seller-1",
			QuotationID: "q-1",
			Kind:        entities.ItemKindProduct,
			Phase:       entities.PhaseNegotiation,
		}
		tx := &struct{}{}

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.threads.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(existing, nil)
		m.tx.EXPECT().NewTx().Return(tx)
		m.quotations.EXPECT().TxSetStatus(tx, "q-1", entities.QuotationStatusPending, entities.QuotationStatusNegotiation, gomock.Any()).Return(nil)
		m.threads.EXPECT().TxSave(tx, gomock.Any(), entities.PhaseNegotiation).Return(nil)
		m.messages.EXPECT().TxCreate(tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any(), tx).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		threadID, err := uc.Negotiate(context.Background(), "seller-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if threadID != "th-1" {
			t.Fatalf("expected existing thread id, got %q", threadID)
		}
	})
}
