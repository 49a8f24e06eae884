package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// ISideEffectDispatcher delivers the post-commit side-effect batch. It must
// be called only after the saga transaction committed; implementations log
// failures and never return them to the saga.
type ISideEffectDispatcher interface {
	Dispatch(ctx context.Context, fx entities.SideEffects)
}
