package services

import (
	"context"
	"fmt"
	"time"

	"hotelpms/services/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetFromRedis loads key into target. found is false on a cache miss.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	return rdb.Del(ctx, keys...).Err()
}

func DeleteKeysByPattern(ctx context.Context, rdb *redis.Client, pattern string) error {
	iter := rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan keys %s: %w", pattern, err)
	}
	return nil
}

// Cache is the read-projection cache. A nil Cache, or one without a client, is a no-op,
// so the services run unchanged when Redis is not configured. Cache failures are logged
// and never fail the request.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Cache) Get(ctx context.Context, key string, target interface{}) bool {
	if !c.enabled() {
		return false
	}
	found, err := GetFromRedis(ctx, c.rdb, key, target)
	if err != nil {
		c.logger.Error("cache get %s: %v", key, err)
		return false
	}
	return found
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if !c.enabled() {
		return
	}
	c.SetTTL(ctx, key, value, c.ttl)
}

func (c *Cache) SetTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !c.enabled() {
		return
	}
	if err := SetToRedis(ctx, c.rdb, key, value, ttl); err != nil {
		c.logger.Error("cache set %s: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.enabled() || len(keys) == 0 {
		return
	}
	if err := DeleteFromRedis(ctx, c.rdb, keys...); err != nil {
		c.logger.Error("cache delete %v: %v", keys, err)
	}
}

func (c *Cache) DeletePattern(ctx context.Context, pattern string) {
	if !c.enabled() {
		return
	}
	if err := DeleteKeysByPattern(ctx, c.rdb, pattern); err != nil {
		c.logger.Error("cache delete pattern %s: %v", pattern, err)
	}
}
