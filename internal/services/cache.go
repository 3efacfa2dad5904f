package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/moodmate/moodmate-backend/internal/database"
)

const (
	// CacheKeyPrefix is the Redis key prefix for cached data.
	CacheKeyPrefix = "cache:"
	// BoardCacheTTL keeps the public board fresh; the board changes with
	// every logged mood, so the TTL stays short.
	BoardCacheTTL = 60 * time.Second
)

// CacheService provides JSON caching for read-heavy public views.
type CacheService struct{}

// Get retrieves a value from cache. A miss is (false, nil), not an error.
func (c *CacheService) Get(key string, dest interface{}) (bool, error) {
	ctx := context.Background()

	val, err := database.RedisClient.Get(ctx, CacheKeyPrefix+key).Result()
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a value in cache with the given TTL.
func (c *CacheService) Set(key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return database.RedisClient.Set(context.Background(), CacheKeyPrefix+key, jsonData, ttl).Err()
}

// Delete removes a value from cache.
func (c *CacheService) Delete(key string) error {
	return database.RedisClient.Del(context.Background(), CacheKeyPrefix+key).Err()
}

// Global cache service instance
var Cache = &CacheService{}
