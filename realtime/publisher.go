package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces the per-election result channels in Redis
const channelPrefix = "election_results:"

// channelFor returns the Redis channel carrying one election's snapshots
func channelFor(electionID int) string {
	return fmt.Sprintf("%s%d", channelPrefix, electionID)
}

// Publisher pushes freshly computed tally snapshots to observers. Delivery
// is best-effort, at most once per triggering vote.
type Publisher interface {
	PublishResults(snapshot *entity.ResultsResponse) error
}

// RedisPublisher fans snapshots out through Redis pub/sub so every server
// instance's websocket hub sees them, not just the one that took the vote.
type RedisPublisher struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisPublisher creates a publisher on the shared Redis client
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		ctx:    context.Background(),
	}
}

// PublishResults serializes the snapshot and publishes it on the election's channel
func (p *RedisPublisher) PublishResults(snapshot *entity.ResultsResponse) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal results snapshot: %w", err)
	}

	if err := p.client.Publish(p.ctx, channelFor(snapshot.ElectionID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish results snapshot: %w", err)
	}

	return nil
}
