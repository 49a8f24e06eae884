package notify

import (
	"context"
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/metrics"
	"sellerhub/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const dispatchTimeout = 3 * time.Second

// Dispatcher delivers the post-commit side-effect batch: thread-queue
// replication, buyer notifications and queued-link removals. Every step is
// at-most-once; a failure is logged and counted, never retried and never
// returned to the saga that already committed.
type Dispatcher struct {
	queue         interfaces.IThreadQueue
	notifications interfaces.INotificationRepository
}

var _ interfaces.ISideEffectDispatcher = (*Dispatcher)(nil)

func NewDispatcher(queue interfaces.IThreadQueue, notifications interfaces.INotificationRepository) *Dispatcher {
	return &Dispatcher{queue: queue, notifications: notifications}
}

func (d *Dispatcher) Dispatch(ctx context.Context, fx entities.SideEffects) {
	if fx.Empty() {
		return
	}
	// Detach from the request deadline: the saga already committed, and a
	// cancelled request must not cut the side effects short.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	for _, token := range fx.RemoveTokens {
		if err := d.queue.RemoveByToken(ctx, fx.ThreadID, token); err != nil {
			metrics.SideEffectFailure("token_removal")
			log.WithError(err).WithField("thread_id", fx.ThreadID).Warn("[dispatch] queued link message not removed")
		}
	}
	for _, m := range fx.Messages {
		if err := d.queue.Append(ctx, fx.ThreadID, m); err != nil {
			metrics.SideEffectFailure("message")
			log.WithError(err).WithField("message_id", m.ID).Warn("[dispatch] message not replicated to thread queue")
		}
	}
	for _, n := range fx.Notifications {
		if err := d.notifications.Create(ctx, n); err != nil {
			metrics.SideEffectFailure("notification")
			log.WithError(err).WithField("user_id", n.UserID).Warn("[dispatch] notification not persisted")
		}
	}
}
