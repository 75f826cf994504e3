package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/config"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/logger"
)

const siteViewKey = "site:view"

func NewRedisClient(ctx context.Context, cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

type redisSiteViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSiteViewCache(rdb *redis.Client, ttl time.Duration) service.SiteViewCache {
	return &redisSiteViewCache{rdb: rdb, ttl: ttl}
}

func (c *redisSiteViewCache) Get(ctx context.Context) (*site.SiteView, bool, error) {
	data, err := c.rdb.Get(ctx, siteViewKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get site view: %w", err)
	}
	var view site.SiteView
	if err := json.Unmarshal(data, &view); err != nil {
		// A stale shape from an older build reads as a miss.
		return nil, false, nil
	}
	return &view, true, nil
}

func (c *redisSiteViewCache) Set(ctx context.Context, view *site.SiteView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode site view: %w", err)
	}
	return c.rdb.Set(ctx, siteViewKey, data, c.ttl).Err()
}

func (c *redisSiteViewCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, siteViewKey).Err()
}
