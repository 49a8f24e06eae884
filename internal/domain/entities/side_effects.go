package entities

// SideEffects is the batch of best-effort work assembled inside a saga
// transaction and dispatched only after it commits: chat-queue replication
// of thread messages, buyer notifications, and removal of queued link
// messages for withdrawn invoices. Failures are logged, never retried, and
// never surfaced to the caller.
type SideEffects struct {
	ThreadID      string
	Messages      []Message
	Notifications []Notification
	// RemoveTokens lists capability tokens whose queued link messages
	// should be deleted from the thread queue (invoice withdrawal).
	RemoveTokens []string
}

// Empty reports whether there is nothing to dispatch.
func (fx SideEffects) Empty() bool {
	return len(fx.Messages) == 0 && len(fx.Notifications) == 0 && len(fx.RemoveTokens) == 0
}
