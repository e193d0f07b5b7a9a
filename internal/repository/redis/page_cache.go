package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultPageTTL = 20 * time.Second
	PageKeyPrefix  = "page:cache"
)

// CachedPage is a stored rendered response.
type CachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCacheRepository holds full responses keyed by request identity
// (path plus raw query). Entries expire by TTL only; writes never
// invalidate.
type PageCacheRepository struct {
	ttl time.Duration
}

func NewPageCacheRepository(ttl time.Duration) *PageCacheRepository {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCacheRepository{ttl: ttl}
}

func (r *PageCacheRepository) key(requestID string) string {
	return fmt.Sprintf("%s:%s", PageKeyPrefix, requestID)
}

// Get returns the stored page and whether the key was present.
func (r *PageCacheRepository) Get(ctx context.Context, requestID string) (*CachedPage, bool, error) {
	raw, err := Client.Get(ctx, r.key(requestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var page CachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, false, err
	}
	return &page, true, nil
}

func (r *PageCacheRepository) Set(ctx context.Context, requestID string, page *CachedPage) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return Client.Set(ctx, r.key(requestID), raw, r.ttl).Err()
}

// Clear drops every cached page. Used by tests and operational tooling.
func (r *PageCacheRepository) Clear(ctx context.Context) error {
	iter := Client.Scan(ctx, 0, PageKeyPrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
