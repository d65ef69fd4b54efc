// Package cache is a read-through redis cache for user rosters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/redis/go-redis/v9"
)

type InventoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewInventoryCache(client *redis.Client, ttl time.Duration) *InventoryCache {
	return &InventoryCache{client: client, ttl: ttl}
}

func (c *InventoryCache) key(userID uint) string {
	return fmt.Sprintf("user:pokemon:%d", userID)
}

// Get returns the cached roster and whether it was present.
func (c *InventoryCache) Get(ctx context.Context, userID uint) (models.PokemonList, bool, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var roster models.PokemonList
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, false, err
	}
	return roster, true, nil
}

func (c *InventoryCache) Set(ctx context.Context, userID uint, roster models.PokemonList) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *InventoryCache) Invalidate(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
