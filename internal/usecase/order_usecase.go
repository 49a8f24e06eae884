package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/metrics"
	"sellerhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// UpdateOrderStatusInput advances an order along the delivery pipeline.
type UpdateOrderStatusInput struct {
	Status         entities.OrderStatus
	TrackingNumber string
}

// IOrderUseCase exposes the post-sale order pipeline.
type IOrderUseCase interface {
	UpdateStatus(ctx context.Context, sellerID, orderID string, in UpdateOrderStatusInput) (entities.Order, error)
	GetByID(ctx context.Context, sellerID, orderID string) (entities.Order, error)
}

// OrderDeps wires the collaborators of the order use case.
type OrderDeps struct {
	Orders     interfaces.IOrderRepository
	Threads    interfaces.IDealThreadRepository
	Messages   interfaces.IMessageRepository
	Tx         interfaces.ITxRunner
	Dispatcher interfaces.ISideEffectDispatcher
}

type OrderUseCase struct {
	deps OrderDeps
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(deps OrderDeps) *OrderUseCase {
	return &OrderUseCase{deps: deps, now: time.Now}
}

// UpdateStatus advances the order one pipeline step (or into a side exit),
// stamps shipping/delivery timestamps, appends a status message to the
// deal thread, and marks the thread completed on delivery.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, sellerID, orderID string, in UpdateOrderStatusInput) (out entities.Order, err error) {
	defer func() { metrics.ObserveSaga("update_order_status", err) }()

	o, err := u.loadOwnedOrder(ctx, sellerID, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !entities.CanTransitionOrder(o.Status, in.Status) {
		return entities.Order{}, ErrIllegalOrderStatus
	}

	now := u.now().UTC()
	seenStatus := o.Status
	o.Status = in.Status
	o.UpdatedAt = now
	if tn := strings.TrimSpace(in.TrackingNumber); tn != "" {
		o.TrackingNumber = tn
	}
	switch in.Status {
	case entities.OrderStatusShipped:
		o.ShippedAt = now
	case entities.OrderStatusDelivered:
		o.DeliveredAt = now
	}

	th, err := u.deps.Threads.GetByID(ctx, o.ThreadID)
	if err != nil {
		return entities.Order{}, err
	}

	msg := entities.Message{
		ID:        uuid.NewString(),
		ThreadID:  o.ThreadID,
		SenderID:  o.SellerID,
		Content:   fmt.Sprintf("Order status updated to %s.", in.Status),
		Type:      entities.MessageTypeSystem,
		CreatedAt: now,
	}

	tx := u.deps.Tx.NewTx()
	if err := u.deps.Orders.TxSave(tx, o, seenStatus); err != nil {
		return entities.Order{}, err
	}
	if th.ID != "" {
		seenPhase := th.Phase
		if in.Status == entities.OrderStatusDelivered {
			th.Phase = entities.PhaseCompleted
		}
		th.LastMessage = &entities.LastMessage{MessageID: msg.ID, SenderID: msg.SenderID, Content: msg.Content, SentAt: now}
		th.UnreadBy = o.BuyerID
		th.UpdatedAt = now
		if err := u.deps.Threads.TxSave(tx, th, seenPhase); err != nil {
			return entities.Order{}, err
		}
		if err := u.deps.Messages.TxCreate(tx, msg); err != nil {
			return entities.Order{}, err
		}
	}
	if err := u.deps.Tx.Commit(ctx, tx); err != nil {
		return entities.Order{}, err
	}

	fx := entities.SideEffects{
		Notifications: []entities.Notification{{
			ID:          uuid.NewString(),
			UserID:      o.BuyerID,
			Type:        entities.NotificationOrderStatus,
			Title:       "Order update",
			Body:        fmt.Sprintf("Your order %s is now %s.", o.OrderNumber, in.Status),
			ReferenceID: o.ID,
			CreatedAt:   now,
		}},
	}
	if th.ID != "" {
		fx.ThreadID = th.ID
		fx.Messages = []entities.Message{msg}
	}
	u.deps.Dispatcher.Dispatch(ctx, fx)
	return o, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, sellerID, orderID string) (entities.Order, error) {
	return u.loadOwnedOrder(ctx, sellerID, orderID)
}

func (u *OrderUseCase) loadOwnedOrder(ctx context.Context, sellerID, orderID string) (entities.Order, error) {
	sellerID = strings.TrimSpace(sellerID)
	orderID = strings.TrimSpace(orderID)
	if sellerID == "" {
		return entities.Order{}, ErrInvalidSellerID
	}
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.deps.Orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.SellerID != sellerID {
		return entities.Order{}, ErrOrderForbidden
	}
	return o, nil
}
