package interfaces

import "context"

// SequenceInvoiceNumber is the counter backing invoice numbering.
const SequenceInvoiceNumber = "invoice_number"

// ISequenceRepository is the Sequence Allocator: a globally unique,
// monotonically increasing counter per name. Values may have gaps (a saga
// that allocated and then failed to commit leaves one) but never
// duplicates.
type ISequenceRepository interface {
	NextValue(ctx context.Context, name string) (int64, error)
}
