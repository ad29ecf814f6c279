package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

type RosterCache struct {
	redis *redis.Client
}

func NewRosterCache(redis *redis.Client) *RosterCache {
	return &RosterCache{redis: redis}
}

func (c *RosterCache) GetByUser(ctx context.Context, userID string) ([]models.DutyDay, error) {
	key := fmt.Sprintf("roster:%s", userID)
	data, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, derr.ErrRosterNotFound
		}
		return nil, fmt.Errorf("redis get roster: %w", err)
	}

	var days []models.DutyDay
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, fmt.Errorf("unmarshal cached roster: %w", err)
	}

	return days, nil
}

func (c *RosterCache) Set(ctx context.Context, userID string, days []models.DutyDay, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("roster:%s", userID)
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("marshal roster for cache: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set roster: %w", err)
	}

	return nil
}
