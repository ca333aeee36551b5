package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DARK-V-98/flycargolanka-sub000/config"
)

const rateCacheTTL = 5 * time.Minute

// RateCache keeps recently read weight-band rows in Redis so the quote
// endpoint does not hit MySQL on every keystroke. All methods are safe on
// a nil receiver: without a configured Redis address there is no cache and
// reads go straight to the database.
type RateCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRateCache(cfg config.Config) *RateCache {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Println("redis unavailable, rate cache disabled:", err)
		return nil
	}
	log.Println("Connected to Redis")
	return &RateCache{rdb: rdb, ttl: rateCacheTTL}
}

func rateCacheKey(country string) string {
	return "rates:" + strings.ToLower(strings.TrimSpace(country))
}

func (c *RateCache) GetBands(ctx context.Context, country string) ([]WeightBandRecord, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, rateCacheKey(country)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Println("rate cache read failed:", err)
		}
		return nil, false
	}
	var records []WeightBandRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Println("rate cache entry corrupt, dropping:", err)
		c.Invalidate(ctx, country)
		return nil, false
	}
	return records, true
}

func (c *RateCache) SetBands(ctx context.Context, country string, records []WeightBandRecord) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, rateCacheKey(country), data, c.ttl).Err()
}

func (c *RateCache) Invalidate(ctx context.Context, country string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, rateCacheKey(country)).Err(); err != nil {
		log.Println("rate cache invalidation failed:", err)
	}
}
