package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// IOrderRepository abstracts persistence for orders.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	TxCreate(tx ITx, o entities.Order) error
	TxSave(tx ITx, o entities.Order, seenStatus entities.OrderStatus) error
}
