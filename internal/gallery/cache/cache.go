package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bau-builds/gallery-api/internal/gallery/domain"
)

// galleryKey holds the assembled gallery as one JSON document.
const galleryKey = "gallery:projects"

// GalleryCache keeps the assembled gallery in Redis for a short TTL so the
// public display page stays off the database. Every failure here is a
// cache miss, never an error: a dead Redis must not break reads.
type GalleryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *GalleryCache {
	return &GalleryCache{client: client, ttl: ttl}
}

func (c *GalleryCache) Get(ctx context.Context) ([]domain.Project, bool) {
	data, err := c.client.Get(ctx, galleryKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("gallery cache: get failed: %v", err)
		return nil, false
	}

	var projects []domain.Project
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		log.Printf("gallery cache: stale payload, dropping: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return projects, true
}

func (c *GalleryCache) Set(ctx context.Context, projects []domain.Project) {
	data, err := json.Marshal(projects)
	if err != nil {
		log.Printf("gallery cache: marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, galleryKey, data, c.ttl).Err(); err != nil {
		log.Printf("gallery cache: set failed: %v", err)
	}
}

func (c *GalleryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, galleryKey).Err(); err != nil {
		log.Printf("gallery cache: invalidate failed: %v", err)
	}
}
