package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const comboCacheTTL = 15 * time.Minute

// RedisComboCache implements ComboCache backed by redis
type RedisComboCache struct {
	client *redis.Client
}

// NewRedisComboCache creates a redis-backed combo cache
func NewRedisComboCache(client *redis.Client) *RedisComboCache {
	return &RedisComboCache{client: client}
}

func comboKey(comboID string) string {
	return fmt.Sprintf("combo:%s", comboID)
}

func (c *RedisComboCache) GetCombo(ctx context.Context, comboID string) (*domain.Combo, error) {
	val, err := c.client.Get(ctx, comboKey(comboID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get combo from cache: %w", err)
	}

	var combo domain.Combo
	if err := json.Unmarshal([]byte(val), &combo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached combo: %w", err)
	}
	return &combo, nil
}

func (c *RedisComboCache) SetCombo(ctx context.Context, combo domain.Combo) error {
	data, err := json.Marshal(combo)
	if err != nil {
		return fmt.Errorf("failed to marshal combo for cache: %w", err)
	}
	if err := c.client.Set(ctx, comboKey(combo.ComboID), data, comboCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set combo in cache: %w", err)
	}
	return nil
}
