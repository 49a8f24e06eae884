package interfaces

import (
	"context"
	"time"

	"sellerhub/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for one quotation table
// (product or service kind).
//
// Reads are strongly consistent. TxSetStatus appends a guarded status
// update to the transaction: it only applies if the stored status still
// equals from, which closes the race against a concurrent transition.
type IQuotationRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	TxSetStatus(tx ITx, id string, from, to entities.QuotationStatus, updatedAt time.Time) error
}
