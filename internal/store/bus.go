package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ChangeBus carries partition-changed notifications between writer and
// subscriber processes. Messages carry no payload: a notification only means
// "reload the snapshot".
type ChangeBus interface {
	Publish(ctx context.Context, channel string) error
	// Subscribe returns a channel that ticks on every notification and a
	// cancel function tearing the subscription down.
	Subscribe(ctx context.Context, channel string) (<-chan struct{}, func(), error)
}

type redisBus struct {
	client *redis.Client
}

// NewRedisBus adapts a go-redis client to the ChangeBus contract using
// Redis pub/sub.
func NewRedisBus(client *redis.Client) ChangeBus {
	return &redisBus{client: client}
}

func (b *redisBus) Publish(ctx context.Context, channel string) error {
	return b.client.Publish(ctx, channel, "1").Err()
}

func (b *redisBus) Subscribe(ctx context.Context, channel string) (<-chan struct{}, func(), error) {
	pubsub := b.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	ticks := make(chan struct{}, 1)
	go func() {
		defer close(ticks)
		for range pubsub.Channel() {
			// Coalesce bursts: one pending tick is enough to trigger a
			// full snapshot reload.
			select {
			case ticks <- struct{}{}:
			default:
			}
		}
	}()

	cancel := func() { _ = pubsub.Close() }
	return ticks, cancel, nil
}
