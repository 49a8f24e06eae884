package interfaces

import (
	"context"
	"errors"
)

// ErrConflict is returned by ITxRunner.Commit when a condition expression
// guarding previously-read state failed: another request mutated one of the
// documents between our read and the commit. Nothing was written.
var ErrConflict = errors.New("transaction conflict")

// ITx accumulates the writes of one saga operation. Implementations are
// store-specific; use cases treat it as opaque and hand it to repository
// Tx* methods, then commit it exactly once.
type ITx interface{}

// ITxRunner creates and atomically commits saga transactions. A commit
// either persists every accumulated write or none of them.
type ITxRunner interface {
	NewTx() ITx
	Commit(ctx context.Context, tx ITx) error
}
