package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// IMessageRepository abstracts persistence for thread messages. TxCreate
// writes inside the saga transaction; Create is the fire-and-forget path
// used by non-transactional steps such as the invoice withdrawal note.
type IMessageRepository interface {
	TxCreate(tx ITx, m entities.Message) error
	Create(ctx context.Context, m entities.Message) error
}
