package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stitts-dev/cricket-sim/internal/models"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("key not found")

// Cache is what handlers need from a result cache. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type CacheService struct {
	client *redis.Client
	prefix string
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{
		client: client,
		prefix: "cricket:",
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

func (s *CacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Cache key generators. Only deterministic results are cached, so a key must
// capture every input that affects the result.
func ProjectionCacheKey(s models.MatchScenario) string {
	overs, runs, wickets := "-", "-", "-"
	if s.Overs != nil {
		overs = strconv.FormatFloat(*s.Overs, 'f', -1, 64)
	}
	if s.Runs != nil {
		runs = strconv.Itoa(*s.Runs)
	}
	if s.Wickets != nil {
		wickets = strconv.Itoa(*s.Wickets)
	}
	return fmt.Sprintf("projection:%s:%s:%s:%s:%s:%s", s.BattingTeamID, s.BowlingTeamID, s.VenueID, overs, runs, wickets)
}

func MatchupCacheKey(batterID, bowlerID string) string {
	return fmt.Sprintf("matchup:%s:%s", batterID, bowlerID)
}
