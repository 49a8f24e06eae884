package usecase

import (
	"context"
	"os"
	"strings"
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/metrics"
	"sellerhub/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// defaultDueDays is applied when the seller does not supply a due date.
	defaultDueDays = 30
	// defaultTokenTTL is the capability-token lifetime.
	defaultTokenTTL = 30 * 24 * time.Hour
	// defaultExpiryWindow is the invoice's own business expiry. This clock
	// is independent of the token TTL; both are checked on buyer view.
	defaultExpiryWindow = 7 * 24 * time.Hour

	msgInvoiceSent      = "The seller sent an invoice."
	msgInvoiceWithdrawn = "The seller withdrew the invoice."
)

// InvoiceConfig carries the tunable windows of the invoice lifecycle.
type InvoiceConfig struct {
	TokenTTL     time.Duration
	ExpiryWindow time.Duration
}

// InvoiceConfigFromEnv reads INVOICE_TOKEN_TTL and INVOICE_EXPIRY (Go
// duration syntax) with the documented defaults.
func InvoiceConfigFromEnv() InvoiceConfig {
	cfg := InvoiceConfig{TokenTTL: defaultTokenTTL, ExpiryWindow: defaultExpiryWindow}
	if v := os.Getenv("INVOICE_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}
	if v := os.Getenv("INVOICE_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ExpiryWindow = d
		}
	}
	return cfg
}

// GenerateInvoiceInput is the negotiated-price invoice request. Items, when
// supplied, take precedence over NegotiatedPrice for the subtotal.
type GenerateInvoiceInput struct {
	QuotationID     string
	NegotiatedPrice float64
	Currency        string
	Items           []entities.InvoiceItem
	TaxAmount       float64
	ShippingAmount  float64
	AdditionalFees  float64
	PaymentTerms    string
	DeliveryTerms   string
	DueDate         time.Time
	SellerBlock     entities.PartyBlock
}

type GenerateInvoiceResult struct {
	InvoiceID string
	Token     string
	Total     float64
}

// UpdateInvoicePatch merge-patches a pending invoice: a nil field retains
// the previous value, a set field wins.
type UpdateInvoicePatch struct {
	NegotiatedPrice *float64
	Items           *[]entities.InvoiceItem
	TaxAmount       *float64
	ShippingAmount  *float64
	AdditionalFees  *float64
	PaymentTerms    *string
	DeliveryTerms   *string
	DueDate         *time.Time
	Currency        *string
}

// IInvoiceUseCase exposes the invoice round of the deal saga plus the
// token-gated buyer view. One instance exists per item kind.
type IInvoiceUseCase interface {
	Generate(ctx context.Context, sellerID string, in GenerateInvoiceInput) (GenerateInvoiceResult, error)
	Update(ctx context.Context, sellerID, invoiceID string, patch UpdateInvoicePatch) (entities.Invoice, error)
	Delete(ctx context.Context, sellerID, invoiceID string) error
	ViewByToken(ctx context.Context, token string) (entities.Invoice, error)
}

// InvoiceDeps wires the collaborators of the invoice use case.
type InvoiceDeps struct {
	Quotations interfaces.IQuotationRepository
	Threads    interfaces.IDealThreadRepository
	Invoices   interfaces.IInvoiceRepository
	Messages   interfaces.IMessageRepository
	Addresses  interfaces.IAddressRepository
	Sequences  interfaces.ISequenceRepository
	Tx         interfaces.ITxRunner
	Tokens     interfaces.ITokenIssuer
	Dispatcher interfaces.ISideEffectDispatcher
}

type InvoiceUseCase struct {
	kind entities.ItemKind
	deps InvoiceDeps
	cfg  InvoiceConfig
	now  func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(kind entities.ItemKind, deps InvoiceDeps, cfg InvoiceConfig) *InvoiceUseCase {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.ExpiryWindow <= 0 {
		cfg.ExpiryWindow = defaultExpiryWindow
	}
	return &InvoiceUseCase{kind: kind, deps: deps, cfg: cfg, now: time.Now}
}

// Generate creates the invoice of a new negotiation round.
//
// Preconditions, in order: the quotation exists and belongs to the caller;
// no pending invoice is active on the thread (Conflict); the thread phase
// allows a new round (BadRequest). A wholly absent thread is created with
// phase invoice_sent.
func (u *InvoiceUseCase) Generate(ctx context.Context, sellerID string, in GenerateInvoiceInput) (res GenerateInvoiceResult, err error) {
	defer func() { metrics.ObserveSaga("generate_invoice", err) }()

	q, err := loadOwnedQuotation(ctx, u.deps.Quotations, sellerID, in.QuotationID)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}
	if q.Status == entities.QuotationStatusRejected {
		return GenerateInvoiceResult{}, ErrQuotationTerminal
	}

	th, err := u.deps.Threads.GetByQuotationID(ctx, q.ID)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}
	if th.ID != "" {
		if th.HasPendingInvoice() {
			return GenerateInvoiceResult{}, ErrActiveInvoicePending
		}
		if !th.CanGenerateInvoice() {
			return GenerateInvoiceResult{}, ErrIllegalPhase
		}
	}

	now := u.now().UTC()
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

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = q.Currency
	}
	inv := entities.Invoice{
		ID:              uuid.NewString(),
		QuotationID:     q.ID,
		SellerID:        q.SellerID,
		BuyerID:         q.BuyerID,
		ThreadID:        th.ID,
		Kind:            u.kind,
		InvoiceDate:     now,
		DueDate:         in.DueDate,
		Currency:        currency,
		SellerBlock:     in.SellerBlock,
		Items:           in.Items,
		NegotiatedPrice: in.NegotiatedPrice,
		TaxAmount:       in.TaxAmount,
		ShippingAmount:  in.ShippingAmount,
		AdditionalFees:  in.AdditionalFees,
		Terms:           entities.InvoiceTerms{Payment: in.PaymentTerms, Delivery: in.DeliveryTerms},
		Status:          entities.InvoiceStatusPending,
		ExpiresAt:       now.Add(u.cfg.ExpiryWindow),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = now.AddDate(0, 0, defaultDueDays)
	}
	if inv.Terms.Payment == "" {
		inv.Terms.Payment = defaultPaymentTerms
	}
	if inv.Terms.Delivery == "" {
		inv.Terms.Delivery = defaultDeliveryTerms
	}
	inv.RecomputeTotals()
	if inv.Subtotal <= 0 {
		return GenerateInvoiceResult{}, ErrInvalidInvoiceAmount
	}

	// The buyer display block is a point-in-time snapshot taken from the
	// buyer's default billing address, when one exists.
	if billing, aerr := u.deps.Addresses.FindDefault(ctx, q.BuyerID, entities.AddressTypeBilling); aerr == nil && billing.ID != "" {
		inv.BuyerBlock = entities.PartyBlock{Name: billing.Name, AddressLine: addressLine(billing)}
	}

	seq, err := u.deps.Sequences.NextValue(ctx, interfaces.SequenceInvoiceNumber)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}
	inv.Number = entities.FormatInvoiceNumber(now.Year(), seq)

	token, err := u.deps.Tokens.Issue(inv.ID, u.cfg.TokenTTL)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}

	linkMsg := entities.Message{
		ID:        uuid.NewString(),
		ThreadID:  th.ID,
		SenderID:  q.SellerID,
		Content:   msgInvoiceSent,
		Type:      entities.MessageTypeLink,
		Token:     token,
		CreatedAt: now,
	}

	th.Phase = entities.PhaseInvoiceSent
	th.ActiveInvoice = &entities.ActiveInvoice{
		InvoiceID: inv.ID,
		Status:    entities.ActiveInvoicePending,
		Token:     token,
		CreatedAt: now,
	}
	th.LastMessage = &entities.LastMessage{MessageID: linkMsg.ID, SenderID: linkMsg.SenderID, Content: linkMsg.Content, SentAt: now}
	th.UnreadBy = q.BuyerID
	th.UpdatedAt = now

	tx := u.deps.Tx.NewTx()
	if err := u.deps.Quotations.TxSetStatus(tx, q.ID, q.Status, entities.QuotationStatusAccepted, now); err != nil {
		return GenerateInvoiceResult{}, err
	}
	if newThread {
		err = u.deps.Threads.TxCreate(tx, th)
	} else {
		err = u.deps.Threads.TxSave(tx, th, seenPhase)
	}
	if err != nil {
		return GenerateInvoiceResult{}, err
	}
	if err := u.deps.Invoices.TxCreate(tx, inv); err != nil {
		return GenerateInvoiceResult{}, err
	}
	if err := u.deps.Messages.TxCreate(tx, linkMsg); err != nil {
		return GenerateInvoiceResult{}, err
	}
	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return GenerateInvoiceResult{}, err
	}

	u.deps.Dispatcher.Dispatch(ctx, entities.SideEffects{
		ThreadID: th.ID,
		Messages: []entities.Message{linkMsg},
		Notifications: []entities.Notification{{
			ID:          uuid.NewString(),
			UserID:      q.BuyerID,
			Type:        entities.NotificationInvoiceSent,
			Title:       "Invoice received",
			Body:        "The seller sent you an invoice.",
			ReferenceID: inv.ID,
			CreatedAt:   now,
		}},
	})

	return GenerateInvoiceResult{InvoiceID: inv.ID, Token: token, Total: inv.Total}, nil
}

// Update merge-patches a pending invoice and recomputes its totals under
// the same subtotal rule as Generate. Only legal while the invoice is
// pending and the thread phase is still invoice_sent.
func (u *InvoiceUseCase) Update(ctx context.Context, sellerID, invoiceID string, patch UpdateInvoicePatch) (out entities.Invoice, err error) {
	defer func() { metrics.ObserveSaga("update_invoice", err) }()

	inv, err := u.loadOwnedInvoice(ctx, sellerID, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusPending {
		return entities.Invoice{}, ErrInvoiceNotPending
	}
	th, err := u.deps.Threads.GetByID(ctx, inv.ThreadID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if th.ID == "" || th.Phase != entities.PhaseInvoiceSent {
		return entities.Invoice{}, ErrIllegalPhase
	}

	if patch.NegotiatedPrice != nil {
		inv.NegotiatedPrice = *patch.NegotiatedPrice
	}
	if patch.Items != nil {
		inv.Items = *patch.Items
	}
	if patch.TaxAmount != nil {
		inv.TaxAmount = *patch.TaxAmount
	}
	if patch.ShippingAmount != nil {
		inv.ShippingAmount = *patch.ShippingAmount
	}
	if patch.AdditionalFees != nil {
		inv.AdditionalFees = *patch.AdditionalFees
	}
	if patch.PaymentTerms != nil {
		inv.Terms.Payment = *patch.PaymentTerms
	}
	if patch.DeliveryTerms != nil {
		inv.Terms.Delivery = *patch.DeliveryTerms
	}
	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.Currency != nil {
		inv.Currency = *patch.Currency
	}
	inv.RecomputeTotals()
	if inv.Subtotal <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	inv.UpdatedAt = u.now().UTC()

	tx := u.deps.Tx.NewTx()
	if err := u.deps.Invoices.TxSave(tx, inv, entities.InvoiceStatusPending); err != nil {
		return entities.Invoice{}, err
	}
	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

// Delete withdraws a pending invoice: the record is removed outright (no
// archival), the thread returns to negotiation, and the queued link
// message is removed from the chat queue. Queue cleanup and the withdrawn
// note are fire-and-forget.
func (u *InvoiceUseCase) Delete(ctx context.Context, sellerID, invoiceID string) (err error) {
	defer func() { metrics.ObserveSaga("delete_invoice", err) }()

	inv, err := u.loadOwnedInvoice(ctx, sellerID, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status != entities.InvoiceStatusPending {
		return ErrInvoiceNotPending
	}
	th, err := u.deps.Threads.GetByID(ctx, inv.ThreadID)
	if err != nil {
		return err
	}

	now := u.now().UTC()
	tx := u.deps.Tx.NewTx()
	var token string
	if th.ID != "" {
		seenPhase := th.Phase
		if th.ActiveInvoice != nil {
			token = th.ActiveInvoice.Token
		}
		th.Phase = entities.PhaseNegotiation
		th.ActiveInvoice = nil
		th.UpdatedAt = now
		if err := u.deps.Threads.TxSave(tx, th, seenPhase); err != nil {
			return err
		}
	}
	if err := u.deps.Invoices.TxDelete(tx, inv.ID, entities.InvoiceStatusPending); err != nil {
		return err
	}
	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return err
	}

	fx := entities.SideEffects{ThreadID: th.ID}
	if token != "" {
		fx.RemoveTokens = []string{token}
	}
	if th.ID != "" {
		withdrawn := entities.Message{
			ID:        uuid.NewString(),
			ThreadID:  th.ID,
			SenderID:  inv.SellerID,
			Content:   msgInvoiceWithdrawn,
			Type:      entities.MessageTypeSystem,
			CreatedAt: now,
		}
		if cerr := u.deps.Messages.Create(ctx, withdrawn); cerr != nil {
			log.WithError(cerr).WithField("thread_id", th.ID).Warn("[invoice][delete] withdrawn message not persisted")
		}
		fx.Messages = []entities.Message{withdrawn}
	}
	u.deps.Dispatcher.Dispatch(ctx, fx)
	return nil
}

// ViewByToken resolves a capability token to its invoice. Two expiry
// clocks apply: the token's own lifetime (TokenExpired) and the invoice's
// business expiresAt (Gone). The first successful view flips
// viewed_by_buyer; later views change nothing.
func (u *InvoiceUseCase) ViewByToken(ctx context.Context, token string) (entities.Invoice, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Invoice{}, interfaces.ErrTokenInvalid
	}

	invoiceID, err := u.deps.Tokens.Verify(token)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, err := u.deps.Invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	now := u.now().UTC()
	if inv.Expired(now) {
		return entities.Invoice{}, ErrInvoiceExpired
	}
	if !inv.ViewedByBuyer {
		return u.deps.Invoices.SetViewed(ctx, inv.ID, now)
	}
	return inv, nil
}

func (u *InvoiceUseCase) loadOwnedInvoice(ctx context.Context, sellerID, invoiceID string) (entities.Invoice, error) {
	sellerID = strings.TrimSpace(sellerID)
	invoiceID = strings.TrimSpace(invoiceID)
	if sellerID == "" {
		return entities.Invoice{}, ErrInvalidSellerID
	}
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.deps.Invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	// Direct-id lookups report an explicit ownership mismatch.
	if inv.SellerID != sellerID {
		return entities.Invoice{}, ErrInvoiceForbidden
	}
	return inv, nil
}
