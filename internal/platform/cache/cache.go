package cache

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"
)

// Cache adds read-through loading with per-key deduplication on top of a Backend.
// Backend failures degrade to calling the loader directly.
type Cache struct {
	backend Backend
	flight  singleflight.Group
	logger  *logging.Logger
}

func New(backend Backend, logger *logging.Logger) *Cache {
	if logger == nil {
		logger = logging.Default()
	}
	return &Cache{backend: backend, logger: logger}
}

func (c *Cache) Invalidate(ctx context.Context, prefix string) {
	if err := c.backend.DeletePrefix(ctx, prefix); err != nil {
		c.logger.WarnContext(ctx, "cache invalidate failed", "prefix", prefix, "error", err)
	}
}

// GetOrLoad returns the cached value for key or calls loader and stores its result.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if c == nil || key == "" {
		return loader(ctx)
	}

	if out, ok := c.lookup(ctx, key); ok {
		var v T
		if err := sonic.Unmarshal(out, &v); err == nil {
			return v, nil
		}
	}

	raw, err, _ := c.flight.Do(key, func() (any, error) {
		if cached, ok := c.lookup(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		encoded, encErr := encode(loaded)
		if encErr != nil {
			return nil, encErr
		}
		if setErr := c.backend.Set(ctx, key, encoded); setErr != nil {
			c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", setErr)
		}
		return encoded, nil
	})
	if err != nil {
		return zero, err
	}

	var v T
	if err := sonic.Unmarshal(raw.([]byte), &v); err != nil {
		return zero, fmt.Errorf("decode cached value key=%s: %w", key, err)
	}
	return v, nil
}

func (c *Cache) lookup(ctx context.Context, key string) ([]byte, bool) {
	out, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return nil, false
	}
	return out, ok
}

func encode(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}
	return append([]byte(nil), buf.Bytes()...), nil
}
