package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/aditya20-b/social-media-osint/config"
	"github.com/aditya20-b/social-media-osint/internal/models"
)

const seenPostsKey = "osint:seen_posts"

// Cache stores collected post batches in Valkey so repeated searches
// within the expiry window skip the network. A nil *Cache is a valid
// no-op cache; every method tolerates it.
type Cache struct {
	client valkey.Client
	ttl    time.Duration
}

// New connects to Valkey when caching is enabled and an address is
// configured; otherwise it returns nil (caching disabled).
func New(settings config.Settings) (*Cache, error) {
	if !settings.CacheEnabled || settings.ValkeyAddress == "" {
		return nil, nil
	}

	opts := valkey.ClientOption{
		InitAddress:      []string{settings.ValkeyAddress},
		Password:         settings.ValkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if settings.ValkeyTLS {
		opts.TLSConfig = &tls.Config{}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[Cache] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[Cache] failed to ping Valkey: %w", err)
	}

	slog.Info("[Cache] Connected to Valkey", slog.String("address", settings.ValkeyAddress))

	return &Cache{client: client, ttl: settings.CacheExpiry}, nil
}

// Close releases the connection.
func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.client.Close()
}

func batchKey(platform, keyword string) string {
	return fmt.Sprintf("osint:posts:%s:%s", platform, keyword)
}

// GetPosts returns the cached batch for (platform, keyword) when one
// exists. Cache misses and errors both report ok=false.
func (c *Cache) GetPosts(ctx context.Context, platform, keyword string) ([]models.Post, bool) {
	if c == nil {
		return nil, false
	}

	resp := c.client.Do(ctx, c.client.B().Get().Key(batchKey(platform, keyword)).Build())
	raw, err := resp.AsBytes()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[Cache] Failed to read cached posts", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		slog.Warn("[Cache] Failed to decode cached posts", slog.String("error", err.Error()))
		return nil, false
	}
	return posts, true
}

// StorePosts caches a collected batch with the configured TTL. Failures
// only log; collection always proceeds.
func (c *Cache) StorePosts(ctx context.Context, platform, keyword string, posts []models.Post) {
	if c == nil || len(posts) == 0 {
		return
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		slog.Warn("[Cache] Failed to encode posts", slog.String("error", err.Error()))
		return
	}

	cmd := c.client.B().Set().Key(batchKey(platform, keyword)).Value(string(raw)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[Cache] Failed to store posts", slog.String("error", err.Error()))
	}
}

// FilterNew drops posts whose IDs were recorded by a previous run and
// marks the remainder as seen. Posts without IDs always pass through,
// as does everything when caching is disabled.
func (c *Cache) FilterNew(ctx context.Context, posts []models.Post) []models.Post {
	if c == nil || len(posts) == 0 {
		return posts
	}

	fresh := make([]models.Post, 0, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.ID != "" && c.Seen(ctx, p.ID) {
			continue
		}
		fresh = append(fresh, p)
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}
	c.MarkSeen(ctx, ids...)

	if dropped := len(posts) - len(fresh); dropped > 0 {
		slog.Info("[Cache] Skipped already-seen posts", slog.Int("count", dropped))
	}
	return fresh
}

// MarkSeen records post IDs in the cross-run dedup set.
func (c *Cache) MarkSeen(ctx context.Context, ids ...string) {
	if c == nil || len(ids) == 0 {
		return
	}

	cmd := c.client.B().Sadd().Key(seenPostsKey).Member(ids...).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[Cache] Failed to mark posts as seen", slog.String("error", err.Error()))
	}
}

// Seen reports whether a post ID was recorded by a previous run.
func (c *Cache) Seen(ctx context.Context, id string) bool {
	if c == nil {
		return false
	}

	seen, err := c.client.Do(ctx, c.client.B().Sismember().Key(seenPostsKey).Member(id).Build()).AsBool()
	if err != nil {
		return false
	}
	return seen
}
