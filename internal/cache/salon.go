package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pratikupreti7/razorsnreviews-api/internal/domain"
)

// SalonCache is a Redis-backed read-through cache for salon listings.
// It implements service.SalonCache.
type SalonCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSalonCache creates a new salon cache with the given TTL.
func NewSalonCache(client *redis.Client, ttl time.Duration) *SalonCache {
	return &SalonCache{
		client: client,
		ttl:    ttl,
	}
}

func salonKey(id string) string {
	return "salon:" + id
}

// Get returns the cached salon, or (nil, nil) on a miss.
func (c *SalonCache) Get(ctx context.Context, id string) (*domain.Salon, error) {
	data, err := c.client.Get(ctx, salonKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached salon: %w", err)
	}

	var salon domain.Salon
	if err := json.Unmarshal(data, &salon); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, nil
	}

	return &salon, nil
}

// Set stores the salon under its id with the configured TTL.
func (c *SalonCache) Set(ctx context.Context, salon *domain.Salon) error {
	data, err := json.Marshal(salon)
	if err != nil {
		return fmt.Errorf("marshal salon for cache: %w", err)
	}

	if err := c.client.Set(ctx, salonKey(salon.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached salon: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry for the salon.
func (c *SalonCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, salonKey(id)).Err(); err != nil {
		return fmt.Errorf("invalidate cached salon: %w", err)
	}
	return nil
}
