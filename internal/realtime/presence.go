package realtime

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const presenceKeyPrefix = "presence:user:"

// Presence tracks which users currently hold a live connection. Keys
// carry a TTL and are refreshed while the connection lives, so a
// crashed process cannot leave users online forever.
type Presence struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPresence(client *redis.Client, ttl time.Duration) *Presence {
	return &Presence{
		client: client,
		ttl:    ttl,
	}
}

func (p *Presence) MarkOnline(ctx context.Context, userID string) error {
	if p == nil || p.client == nil || userID == "" {
		return nil
	}
	return p.client.Set(ctx, presenceKeyPrefix+userID, "1", p.ttl).Err()
}

func (p *Presence) MarkOffline(ctx context.Context, userID string) error {
	if p == nil || p.client == nil || userID == "" {
		return nil
	}
	return p.client.Del(ctx, presenceKeyPrefix+userID).Err()
}

func (p *Presence) IsOnline(ctx context.Context, userID string) bool {
	if p == nil || p.client == nil || userID == "" {
		return false
	}
	n, err := p.client.Exists(ctx, presenceKeyPrefix+userID).Result()
	return err == nil && n > 0
}
