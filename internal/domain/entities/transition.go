package entities

// AcceptTransition names the state-machine entry point taken when a seller
// accepts a quotation. The two branches have very different side effects,
// so the choice is made explicit instead of branching inline on the stored
// status.
type AcceptTransition string

const (
	// TransitionDirectAccept is the fast path: the quotation was never
	// negotiated, so acceptance synthesizes the whole thread/invoice/order
	// chain at the quotation's maximum price.
	TransitionDirectAccept AcceptTransition = "direct_accept"
	// TransitionNegotiatedAccept closes a quotation that already went
	// through an invoice round; only the quotation status flips.
	TransitionNegotiatedAccept AcceptTransition = "negotiated_accept"
	// TransitionNone means the quotation is terminal and cannot be accepted.
	TransitionNone AcceptTransition = ""
)

// AcceptTransitionFor selects the accept branch for the stored status.
func AcceptTransitionFor(status QuotationStatus) AcceptTransition {
	switch status {
	case QuotationStatusPending:
		return TransitionDirectAccept
	case QuotationStatusNegotiation:
		return TransitionNegotiatedAccept
	default:
		return TransitionNone
	}
}

// phaseSuccessors is the forward edge set of the thread phase machine.
// invoice_rejected -> negotiation (handled separately in CanResetToNegotiation)
// is the only backward edge the system performs.
var phaseSuccessors = map[ThreadPhase][]ThreadPhase{
	PhaseNegotiation:     {PhaseInvoiceSent, PhaseOrderCreated},
	PhaseInvoiceSent:     {PhaseInvoiceAccepted, PhaseInvoiceRejected, PhaseNegotiation},
	PhaseInvoiceAccepted: {PhaseOrderCreated},
	PhaseInvoiceRejected: {PhaseInvoiceSent},
	PhaseOrderCreated:    {PhaseCompleted},
	PhaseCompleted:       {},
}

// CanTransitionPhase reports whether the phase machine allows from -> to.
// The negotiation -> order_created shortcut is used only by the direct
// accept path; invoice_sent -> negotiation only by invoice deletion.
func CanTransitionPhase(from, to ThreadPhase) bool {
	for _, next := range phaseSuccessors[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanResetToNegotiation reports whether the single allowed backward edge
// applies: a seller re-opening discussion after the buyer rejected an
// invoice.
func CanResetToNegotiation(from ThreadPhase) bool {
	return from == PhaseInvoiceRejected
}
