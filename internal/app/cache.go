package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/riskibarqy/fantasy11/internal/config"
	cacherepo "github.com/riskibarqy/fantasy11/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy11/internal/platform/cache"
)

const redisPingTimeout = 3 * time.Second

// wrapCache puts the read-through cache in front of the league and match
// catalogs. Users, wallets and teams always hit storage.
func (a *App) wrapCache(ctx context.Context, cfg config.Config, repos *repositories) error {
	if !cfg.CacheEnabled {
		return nil
	}

	var backend cache.Backend
	switch cfg.CacheDriver {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		a.onClose("redis", func(context.Context) error {
			return client.Close()
		})
		backend = cache.NewRedisStore(client, cfg.ServiceName+":", cfg.CacheTTL)
	default:
		backend = cache.NewMemoryStore(cfg.CacheTTL)
	}

	c := cache.New(backend, a.logger)
	repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, c)
	repos.matches = cacherepo.NewMatchRepository(repos.matches, c)
	return nil
}
