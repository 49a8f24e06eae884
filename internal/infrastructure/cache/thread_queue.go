package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultQueueTTL = 7 * 24 * time.Hour

type queuedMessage struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Token     string `json:"token,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ThreadQueue keeps a per-thread list of recent messages in Redis so chat
// clients can poll without hitting the message table. Entries expire with
// the thread's inactivity; the durable copy lives in DynamoDB.
type ThreadQueue struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IThreadQueue = (*ThreadQueue)(nil)

func NewThreadQueue(client *redis.Client) *ThreadQueue {
	return &ThreadQueue{client: client, ttl: defaultQueueTTL}
}

func (q *ThreadQueue) Append(ctx context.Context, threadID string, m entities.Message) error {
	payload, err := json.Marshal(queuedMessage{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Type:      string(m.Type),
		Token:     m.Token,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal queued message failed: %w", err)
	}

	key := queueKey(threadID)
	if err := q.client.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	if err := q.client.Expire(ctx, key, q.ttl).Err(); err != nil {
		return fmt.Errorf("redis expire failed: %w", err)
	}
	return nil
}

// RemoveByToken drops the queued link message carrying the given capability
// token. Used when a pending invoice is withdrawn so its link stops
// circulating.
func (q *ThreadQueue) RemoveByToken(ctx context.Context, threadID, token string) error {
	if token == "" {
		return nil
	}
	key := queueKey(threadID)

	entries, err := q.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("redis lrange failed: %w", err)
	}
	for _, raw := range entries {
		var m queuedMessage
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			continue
		}
		if m.Token == token {
			if err := q.client.LRem(ctx, key, 1, raw).Err(); err != nil {
				return fmt.Errorf("redis lrem failed: %w", err)
			}
			return nil
		}
	}
	return nil
}

func queueKey(threadID string) string {
	return fmt.Sprintf("chat:queue:%s", threadID)
}
