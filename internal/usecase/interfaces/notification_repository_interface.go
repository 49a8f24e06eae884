package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// INotificationRepository persists buyer notifications. Only the
// side-effect dispatcher calls it, strictly after a saga commit.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) error
}
