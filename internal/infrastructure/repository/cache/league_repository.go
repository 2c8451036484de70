package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
	basecache "github.com/riskibarqy/fantasy11/internal/platform/cache"
)

const leagueKeyPrefix = "league:"

// LeagueRepository serves league reads from cache. Any join drops every league key
// since list ordering by teams count can change.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Cache
}

func NewLeagueRepository(next league.Repository, cache *basecache.Cache) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context, q league.ListQuery) ([]league.League, error) {
	key := leagueKeyPrefix + "list:" + string(q.Filter) + ":" + string(q.Sort)
	return basecache.GetOrLoad(ctx, r.cache, key, func(ctx context.Context) ([]league.League, error) {
		return r.next.List(ctx, q)
	})
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := leagueKeyPrefix + "id:" + leagueID
	cached, err := basecache.GetOrLoad(ctx, r.cache, key, func(ctx context.Context) (cachedLookup[league.League], error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return cachedLookup[league.League]{}, err
		}
		return cachedLookup[league.League]{Value: item, Exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

func (r *LeagueRepository) IsParticipant(ctx context.Context, leagueID, userID string) (bool, error) {
	return r.next.IsParticipant(ctx, leagueID, userID)
}

func (r *LeagueRepository) AddParticipant(ctx context.Context, leagueID, userID string, joinedAt time.Time) error {
	if err := r.next.AddParticipant(ctx, leagueID, userID, joinedAt); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, leagueKeyPrefix)
	return nil
}

// cachedLookup keeps negative lookups cacheable.
type cachedLookup[T any] struct {
	Value  T    `json:"value"`
	Exists bool `json:"exists"`
}
