package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"cloud-showcase/internal/domain/entities"
)

const listKey = "videos:all"

// VideoListCache, katalog listesinin cache-aside kopyası.
// Upload sonrası invalidate edilir; cache hatası listeyi düşürmez,
// sadece store'a gidilir.
type VideoListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVideoListCache(rdb *redis.Client, ttl time.Duration) *VideoListCache {
	return &VideoListCache{rdb: rdb, ttl: ttl}
}

func (c *VideoListCache) Get(ctx context.Context) ([]entities.Video, bool) {
	data, err := c.rdb.Get(ctx, listKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Cache read failed: %v", err)
		}
		return nil, false
	}

	var videos []entities.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		log.Printf("Cache deserialize failed: %v", err)
		return nil, false
	}
	return videos, true
}

func (c *VideoListCache) Set(ctx context.Context, videos []entities.Video) {
	data, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, listKey, data, c.ttl).Err(); err != nil {
		log.Printf("Cache write failed: %v", err)
	}
}

func (c *VideoListCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, listKey).Err(); err != nil {
		log.Printf("Cache invalidate failed: %v", err)
	}
}
