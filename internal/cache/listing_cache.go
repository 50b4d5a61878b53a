package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/strawberrytart/auction-house/internal/models"
)

const (
	keyActive   = "listings:active"
	keyCategory = "listings:category:"
)

// ListingCache caches the active-listings page and per-category pages in
// Redis. Entries are invalidated on every listing write (create, accepted
// bid, close).
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListingCache returns a new ListingCache.
func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl}
}

// GetActive returns the cached active listings or nil on miss.
func (c *ListingCache) GetActive(ctx context.Context) ([]models.Listing, error) {
	return c.get(ctx, keyActive)
}

// SetActive stores the active listings.
func (c *ListingCache) SetActive(ctx context.Context, listings []models.Listing) error {
	return c.set(ctx, keyActive, listings)
}

// GetCategory returns the cached listings for a category or nil on miss.
func (c *ListingCache) GetCategory(ctx context.Context, categoryID string) ([]models.Listing, error) {
	return c.get(ctx, keyCategory+categoryID)
}

// SetCategory stores the listings for a category.
func (c *ListingCache) SetCategory(ctx context.Context, categoryID string, listings []models.Listing) error {
	return c.set(ctx, keyCategory+categoryID, listings)
}

// Invalidate removes the active-listings key and all category keys.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyActive).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyCategory+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *ListingCache) get(ctx context.Context, key string) ([]models.Listing, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var listings []models.Listing
	if err := json.Unmarshal(b, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *ListingCache) set(ctx context.Context, key string, listings []models.Listing) error {
	b, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
