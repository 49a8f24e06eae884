package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// IDealThreadRepository abstracts persistence for deal threads.
//
// Threads are written whole: TxCreate fails the transaction if the id
// already exists, TxSave only applies while the stored phase still equals
// seenPhase. The phase guard doubles as the "at most one pending invoice
// per thread" enforcement, since every invoice round moves the phase.
type IDealThreadRepository interface {
	GetByID(ctx context.Context, id string) (entities.DealThread, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.DealThread, error)
	TxCreate(tx ITx, thread entities.DealThread) error
	TxSave(tx ITx, thread entities.DealThread, seenPhase entities.ThreadPhase) error
}
