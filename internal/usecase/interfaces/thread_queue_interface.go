package interfaces

import (
	"context"

	"sellerhub/internal/domain/entities"
)

// IThreadQueue is the fast append-only per-thread message queue consumed by
// chat clients. Writes are best-effort; the saga's own state never depends
// on them.
type IThreadQueue interface {
	Append(ctx context.Context, threadID string, m entities.Message) error
	// RemoveByToken deletes the queued link message carrying the given
	// capability token, if still present.
	RemoveByToken(ctx context.Context, threadID, token string) error
}
