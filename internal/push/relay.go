package push

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Relay rebroadcasts match updates published on a Redis channel by an
// external ingest process.
type Relay struct {
	client  *redis.Client
	channel string
	hub     Broadcaster
	logger  *logrus.Logger
	now     func() time.Time
}

func NewRelay(client *redis.Client, channel string, hub Broadcaster, logger *logrus.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Relay{
		client:  client,
		channel: channel,
		hub:     hub,
		logger:  logger,
		now:     time.Now,
	}
}

// Run subscribes to the channel and blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	r.logger.WithField("channel", r.channel).Info("Relaying match updates from Redis")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.Handle([]byte(msg.Payload))
		}
	}
}

// Handle decodes one payload and broadcasts it. Bad payloads are logged and
// skipped.
func (r *Relay) Handle(payload []byte) {
	update, err := DecodeUpdate(payload, r.now())
	if err != nil {
		r.logger.WithError(err).Warn("Dropping undecodable match update")
		return
	}
	if err := r.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, update); err != nil {
		r.logger.WithError(err).Error("Failed to broadcast relayed match update")
	}
}
