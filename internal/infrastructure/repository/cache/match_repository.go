package cache

import (
	"context"

	"github.com/riskibarqy/fantasy11/internal/domain/match"
	basecache "github.com/riskibarqy/fantasy11/internal/platform/cache"
)

const matchKeyPrefix = "match:"

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Cache
}

func NewMatchRepository(next match.Repository, cache *basecache.Cache) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, status match.Status) ([]match.Match, error) {
	key := matchKeyPrefix + "list:" + string(status)
	return basecache.GetOrLoad(ctx, r.cache, key, func(ctx context.Context) ([]match.Match, error) {
		return r.next.List(ctx, status)
	})
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := matchKeyPrefix + "id:" + matchID
	cached, err := basecache.GetOrLoad(ctx, r.cache, key, func(ctx context.Context) (cachedLookup[match.Match], error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return cachedLookup[match.Match]{}, err
		}
		return cachedLookup[match.Match]{Value: item, Exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID string, status match.Status) error {
	if err := r.next.UpdateStatus(ctx, matchID, status); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, matchKeyPrefix)
	return nil
}
