package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ExhibitCacheTTL is the time-to-live for cached exhibit items.
	ExhibitCacheTTL = 24 * time.Hour

	exhibitCacheKeyPrefix = "exhibit"
)

// CachedExhibit is the denormalized read model stored in Redis for the
// unauthenticated visit path. Fields are stored as a Redis hash.
type CachedExhibit struct {
	OwnerID     string    `json:"owner_id"`
	ItemNumber  string    `json:"item_number"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AudioURL    string    `json:"audio_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExhibitCache provides structured read/write operations for visit-path
// cache entries. Keys embed the owner so no entry is ever served across
// tenants. Key format: "exhibit:{ownerID}:{itemNumber}:{language}"
type ExhibitCache struct {
	client *RedisClient
}

// NewExhibitCache creates a new ExhibitCache backed by the given RedisClient.
func NewExhibitCache(r *RedisClient) *ExhibitCache {
	return &ExhibitCache{client: r}
}

// Get retrieves a cached exhibit by its natural key.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ExhibitCache) Get(ctx context.Context, ownerID, number, language string) (*CachedExhibit, error) {
	key := c.key(ownerID, number, language)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedExhibit{
		OwnerID:     vals["owner_id"],
		ItemNumber:  vals["item_number"],
		Language:    vals["language"],
		Title:       vals["title"],
		Description: vals["description"],
		AudioURL:    vals["audio_url"],
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached exhibit as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ExhibitCache) Set(ctx context.Context, item *CachedExhibit) error {
	key := c.key(item.OwnerID, item.ItemNumber, item.Language)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"owner_id", item.OwnerID,
		"item_number", item.ItemNumber,
		"language", item.Language,
		"title", item.Title,
		"description", item.Description,
		"audio_url", item.AudioURL,
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ExhibitCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached exhibit entry.
func (c *ExhibitCache) Delete(ctx context.Context, ownerID, number, language string) error {
	if err := c.client.Client().Del(ctx, c.key(ownerID, number, language)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "exhibit:{ownerID}:{itemNumber}:{language}"
func (c *ExhibitCache) key(ownerID, number, language string) string {
	return fmt.Sprintf("%s:%s:%s:%s", exhibitCacheKeyPrefix, ownerID, number, language)
}
