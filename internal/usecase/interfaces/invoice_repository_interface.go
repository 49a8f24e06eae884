package interfaces

import (
	"context"
	"time"

	"sellerhub/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for one invoice table (product
// or service kind).
//
// TxSave and TxDelete are guarded on the stored status still equaling
// seenStatus. SetViewed runs outside any transaction and is idempotent:
// the first call flips viewed_by_buyer and records viewed_at, later calls
// return the item unchanged.
type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	TxCreate(tx ITx, inv entities.Invoice) error
	TxSave(tx ITx, inv entities.Invoice, seenStatus entities.InvoiceStatus) error
	TxDelete(tx ITx, id string, seenStatus entities.InvoiceStatus) error
	SetViewed(ctx context.Context, id string, at time.Time) (entities.Invoice, error)
}
