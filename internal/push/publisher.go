package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// DefaultChannel is the Redis pub/sub channel match updates travel on.
const DefaultChannel = "match_updates"

// RedisPublisher publishes match updates on a Redis channel. Calls go through
// a circuit breaker so a Redis outage does not stall the feed.
type RedisPublisher struct {
	client         *redis.Client
	channel        string
	circuitBreaker *gobreaker.CircuitBreaker
	logger         *logrus.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger *logrus.Logger) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "match-update-publisher",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("Match update publisher circuit breaker state changed")
		},
	})

	return &RedisPublisher{
		client:         client,
		channel:        channel,
		circuitBreaker: cb,
		logger:         logger,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, update MatchUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal match update: %w", err)
	}

	_, err = p.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, p.client.Publish(ctx, p.channel, payload).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}

func (p *RedisPublisher) State() gobreaker.State {
	return p.circuitBreaker.State()
}
