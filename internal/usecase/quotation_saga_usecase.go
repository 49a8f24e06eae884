package usecase

import (
	"context"
	"strings"
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/metrics"
	"sellerhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultPaymentTerms  = "payment on delivery"
	defaultDeliveryTerms = "standard delivery"

	msgQuotationCreated  = "A new quotation was opened."
	msgQuotationAccepted = "The seller accepted the quotation."
	msgRelationship      = "Order placed. Thank you for your business. Delivery updates will appear in this thread."
	msgNegotiationOpened = "The seller opened price negotiation."
)

// AcceptQuotationResult reports what the accept saga produced. OrderID,
// InvoiceID and ThreadID are set only on the direct-accept branch.
type AcceptQuotationResult struct {
	Transition entities.AcceptTransition
	OrderID    string
	InvoiceID  string
	ThreadID   string
}

// IQuotationSagaUseCase exposes the quotation lifecycle transitions. One
// instance exists per item kind; product and service deals share the exact
// same logic over kind-specific tables.
type IQuotationSagaUseCase interface {
	Accept(ctx context.Context, sellerID, quotationID string) (AcceptQuotationResult, error)
	Reject(ctx context.Context, sellerID, quotationID string) error
	Negotiate(ctx context.Context, sellerID, quotationID string) (threadID string, err error)
}

// QuotationSagaDeps wires the collaborators of the quotation saga.
type QuotationSagaDeps struct {
	Quotations interfaces.IQuotationRepository
	Threads    interfaces.IDealThreadRepository
	Invoices   interfaces.IInvoiceRepository
	Orders     interfaces.IOrderRepository
	Messages   interfaces.IMessageRepository
	Addresses  interfaces.IAddressRepository
	Sequences  interfaces.ISequenceRepository
	Tx         interfaces.ITxRunner
	Dispatcher interfaces.ISideEffectDispatcher
}

type QuotationSagaUseCase struct {
	kind entities.ItemKind
	deps QuotationSagaDeps
	now  func() time.Time
}

var _ IQuotationSagaUseCase = (*QuotationSagaUseCase)(nil)

func NewQuotationSagaUseCase(kind entities.ItemKind, deps QuotationSagaDeps) *QuotationSagaUseCase {
	return &QuotationSagaUseCase{kind: kind, deps: deps, now: time.Now}
}

// Accept transitions a quotation to accepted. The branch taken depends on
// the stored status: a never-negotiated quotation takes the direct-accept
// fast path that synthesizes the thread, an already-accepted invoice at the
// quotation's maximum price, and the order, all in one transaction; a
// quotation in negotiation only flips its status.
func (u *QuotationSagaUseCase) Accept(ctx context.Context, sellerID, quotationID string) (res AcceptQuotationResult, err error) {
	defer func() { metrics.ObserveSaga("accept_quotation", err) }()

	q, err := u.loadOwnedQuotation(ctx, sellerID, quotationID)
	if err != nil {
		return AcceptQuotationResult{}, err
	}

	tr := entities.AcceptTransitionFor(q.Status)
	if tr == entities.TransitionNone {
		return AcceptQuotationResult{}, ErrQuotationTerminal
	}

	now := u.now().UTC()
	tx := u.deps.Tx.NewTx()
	if err := u.deps.Quotations.TxSetStatus(tx, q.ID, q.Status, entities.QuotationStatusAccepted, now); err != nil {
		return AcceptQuotationResult{}, err
	}

	if tr == entities.TransitionNegotiatedAccept {
		if err := u.deps.Tx.Commit(ctx, tx); err != nil {
			return AcceptQuotationResult{}, err
		}
		u.deps.Dispatcher.Dispatch(ctx, entities.SideEffects{
			Notifications: []entities.Notification{u.buyerNotification(q, entities.NotificationQuotationAccepted,
				"Quotation accepted", "The seller accepted your quotation.", q.ID, now)},
		})
		return AcceptQuotationResult{Transition: tr}, nil
	}

	// Direct accept. Resolve both default addresses before building any
	// write: their absence must leave zero new documents behind.
	billing, err := u.deps.Addresses.FindDefault(ctx, q.BuyerID, entities.AddressTypeBilling)
	if err != nil {
		return AcceptQuotationResult{}, err
	}
	shipping, err := u.deps.Addresses.FindDefault(ctx, q.BuyerID, entities.AddressTypeShipping)
	if err != nil {
		return AcceptQuotationResult{}, err
	}
	if billing.ID == "" || shipping.ID == "" {
		return AcceptQuotationResult{}, ErrMissingBuyerAddress
	}

	// Both display blocks are point-in-time snapshots. The seller's is
	// taken from their default billing address when one exists; unlike the
	// buyer addresses it is not a precondition.
	sellerBlock := entities.PartyBlock{}
	if sa, aerr := u.deps.Addresses.FindDefault(ctx, q.SellerID, entities.AddressTypeBilling); aerr == nil && sa.ID != "" {
		sellerBlock = entities.PartyBlock{Name: sa.Name, AddressLine: addressLine(sa)}
	}

	th, err := u.deps.Threads.GetByQuotationID(ctx, q.ID)
	if err != nil {
		return AcceptQuotationResult{}, err
	}
	newThread := th.ID == ""
	seenPhase := th.Phase
	if newThread {
		th = entities.DealThread{
			ID:          uuid.NewString(),
			BuyerID:     q.BuyerID,
			SellerID:    q.SellerID,
			QuotationID: q.ID,
			Kind:        u.kind,
			CreatedAt:   now,
		}
	}

	var msgs []entities.Message
	if newThread {
		msgs = append(msgs, u.systemMessage(th.ID, q.SellerID, msgQuotationCreated, now))
	}
	msgs = append(msgs,
		u.systemMessage(th.ID, q.SellerID, msgQuotationAccepted, now),
		entities.Message{
			ID:        uuid.NewString(),
			ThreadID:  th.ID,
			SenderID:  q.SellerID,
			Content:   msgRelationship,
			Type:      entities.MessageTypeText,
			CreatedAt: now,
		},
	)

	seq, err := u.deps.Sequences.NextValue(ctx, interfaces.SequenceInvoiceNumber)
	if err != nil {
		return AcceptQuotationResult{}, err
	}

	inv := entities.Invoice{
		ID:              uuid.NewString(),
		QuotationID:     q.ID,
		SellerID:        q.SellerID,
		BuyerID:         q.BuyerID,
		ThreadID:        th.ID,
		Kind:            u.kind,
		Number:          entities.FormatInvoiceNumber(now.Year(), seq),
		InvoiceDate:     now,
		DueDate:         now.AddDate(0, 0, defaultDueDays),
		Currency:        q.Currency,
		SellerBlock:     sellerBlock,
		BuyerBlock:      entities.PartyBlock{Name: billing.Name, AddressLine: addressLine(billing)},
		NegotiatedPrice: q.MaxPrice,
		Subtotal:        q.MaxPrice,
		Total:           q.MaxPrice,
		Terms:           entities.InvoiceTerms{Payment: defaultPaymentTerms, Delivery: defaultDeliveryTerms},
		Status:          entities.InvoiceStatusAccepted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		OrderNumber:     entities.NewOrderNumber(now),
		QuotationID:     q.ID,
		InvoiceID:       inv.ID,
		ThreadID:        th.ID,
		BuyerID:         q.BuyerID,
		SellerID:        q.SellerID,
		Kind:            u.kind,
		FinalPrice:      q.MaxPrice,
		Currency:        q.Currency,
		ShippingAddress: shipping.Snapshot(),
		BillingAddress:  billing.Snapshot(),
		Status:          entities.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	last := msgs[len(msgs)-1]
	th.Phase = entities.PhaseOrderCreated
	th.ActiveInvoice = &entities.ActiveInvoice{
		InvoiceID:   inv.ID,
		Status:      entities.ActiveInvoiceAccepted,
		CreatedAt:   now,
		RespondedAt: now,
	}
	th.OrderID = order.ID
	th.LastMessage = &entities.LastMessage{MessageID: last.ID, SenderID: last.SenderID, Content: last.Content, SentAt: now}
	th.UnreadBy = q.BuyerID
	th.UpdatedAt = now

	if newThread {
		err = u.deps.Threads.TxCreate(tx, th)
	} else {
		err = u.deps.Threads.TxSave(tx, th, seenPhase)
	}
	if err != nil {
		return AcceptQuotationResult{}, err
	}
	if err := u.deps.Invoices.TxCreate(tx, inv); err != nil {
		return AcceptQuotationResult{}, err
	}
	if err := u.deps.Orders.TxCreate(tx, order); err != nil {
		return AcceptQuotationResult{}, err
	}
	for _, m := range msgs {
		if err := u.deps.Messages.TxCreate(tx, m); err != nil {
			return AcceptQuotationResult{}, err
		}
	}

	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return AcceptQuotationResult{}, err
	}

	u.deps.Dispatcher.Dispatch(ctx, entities.SideEffects{
		ThreadID: th.ID,
		Messages: msgs,
		Notifications: []entities.Notification{u.buyerNotification(q, entities.NotificationQuotationAccepted,
			"Order created", "The seller accepted your quotation and created an order.", order.ID, now)},
	})

	return AcceptQuotationResult{Transition: tr, OrderID: order.ID, InvoiceID: inv.ID, ThreadID: th.ID}, nil
}

// Reject transitions a pending or negotiating quotation to rejected. No
// thread, invoice or order side effects.
func (u *QuotationSagaUseCase) Reject(ctx context.Context, sellerID, quotationID string) (err error) {
	defer func() { metrics.ObserveSaga("reject_quotation", err) }()

	q, err := u.loadOwnedQuotation(ctx, sellerID, quotationID)
	if err != nil {
		return err
	}
	if q.Status.Terminal() {
		return ErrQuotationTerminal
	}

	now := u.now().UTC()
	tx := u.deps.Tx.NewTx()
	if err := u.deps.Quotations.TxSetStatus(tx, q.ID, q.Status, entities.QuotationStatusRejected, now); err != nil {
		return err
	}
	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return err
	}

	u.deps.Dispatcher.Dispatch(ctx, entities.SideEffects{
		Notifications: []entities.Notification{u.buyerNotification(q, entities.NotificationQuotationRejected,
			"Quotation rejected", "The seller rejected your quotation.", q.ID, now)},
	})
	return nil
}

// Negotiate moves a pending quotation into negotiation and opens (or
// re-opens) its deal thread. The invoice_rejected -> negotiation reset here
// is the only backward phase edge the system performs.
func (u *QuotationSagaUseCase) Negotiate(ctx context.Context, sellerID, quotationID string) (threadID string, err error) {
	defer func() { metrics.ObserveSaga("negotiate_quotation", err) }()

	q, err := u.loadOwnedQuotation(ctx, sellerID, quotationID)
	if err != nil {
		return "", err
	}
	if q.Status != entities.QuotationStatusPending {
		return "", ErrQuotationTerminal
	}

	now := u.now().UTC()
	th, err := u.deps.Threads.GetByQuotationID(ctx, q.ID)
	if err != nil {
		return "", err
	}
	newThread := th.ID == ""
	seenPhase := th.Phase
	if newThread {
		th = entities.DealThread{
			ID:          uuid.NewString(),
			BuyerID:     q.BuyerID,
			SellerID:    q.SellerID,
			QuotationID: q.ID,
			Kind:        u.kind,
			Phase:       entities.PhaseNegotiation,
			CreatedAt:   now,
		}
	} else if entities.CanResetToNegotiation(th.Phase) {
		th.Phase = entities.PhaseNegotiation
	}

	msg := u.systemMessage(th.ID, q.SellerID, msgNegotiationOpened, now)
	th.LastMessage = &entities.LastMessage{MessageID: msg.ID, SenderID: msg.SenderID, Content: msg.Content, SentAt: now}
	th.UnreadBy = q.BuyerID
	th.UpdatedAt = now

	tx := u.deps.Tx.NewTx()
	if err := u.deps.Quotations.TxSetStatus(tx, q.ID, q.Status, entities.QuotationStatusNegotiation, now); err != nil {
		return "", err
	}
	if newThread {
		err = u.deps.Threads.TxCreate(tx, th)
	} else {
		err = u.deps.Threads.TxSave(tx, th, seenPhase)
	}
	if err != nil {
		return "", err
	}
	if err := u.deps.Messages.TxCreate(tx, msg); err != nil {
		return "", err
	}
	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return "", err
	}

	u.deps.Dispatcher.Dispatch(ctx, entities.SideEffects{
		ThreadID: th.ID,
		Messages: []entities.Message{msg},
		Notifications: []entities.Notification{u.buyerNotification(q, entities.NotificationNegotiationOpened,
			"Negotiation opened", "The seller wants to negotiate your quotation.", q.ID, now)},
	})
	return th.ID, nil
}

func (u *QuotationSagaUseCase) loadOwnedQuotation(ctx context.Context, sellerID, quotationID string) (entities.Quotation, error) {
	return loadOwnedQuotation(ctx, u.deps.Quotations, sellerID, quotationID)
}

func loadOwnedQuotation(ctx context.Context, repo interfaces.IQuotationRepository, sellerID, quotationID string) (entities.Quotation, error) {
	sellerID = strings.TrimSpace(sellerID)
	quotationID = strings.TrimSpace(quotationID)
	if sellerID == "" {
		return entities.Quotation{}, ErrInvalidSellerID
	}
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	// Ownership mismatch is reported as not-found on purpose.
	if q.ID == "" || q.SellerID != sellerID {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationSagaUseCase) systemMessage(threadID, senderID, content string, now time.Time) entities.Message {
	return entities.Message{
		ID:        uuid.NewString(),
		ThreadID:  threadID,
		SenderID:  senderID,
		Content:   content,
		Type:      entities.MessageTypeSystem,
		CreatedAt: now,
	}
}

func (u *QuotationSagaUseCase) buyerNotification(q entities.Quotation, typ entities.NotificationType, title, body, ref string, now time.Time) entities.Notification {
	return entities.Notification{
		ID:          uuid.NewString(),
		UserID:      q.BuyerID,
		Type:        typ,
		Title:       title,
		Body:        body,
		ReferenceID: ref,
		CreatedAt:   now,
	}
}

func addressLine(a entities.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Line1, a.City, a.PostalCode, a.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
