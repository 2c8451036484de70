package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	leaguemock "github.com/riskibarqy/fantasy11/internal/mocks/domain/league"
	matchmock "github.com/riskibarqy/fantasy11/internal/mocks/domain/match"
	basecache "github.com/riskibarqy/fantasy11/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCache() *basecache.Cache {
	return basecache.New(basecache.NewMemoryStore(time.Minute), nil)
}

func TestLeagueRepository_ListIsCachedUntilJoin(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, newTestCache())
	q := league.ListQuery{Filter: league.FilterAll, Sort: league.SortPrize}

	mega := league.League{ID: "l1", Name: "Mega", PrizePool: decimal.NewFromInt(1000), EntryFee: decimal.NewFromInt(49), MaxTeams: 10, TeamsCount: 3}
	next.On("List", mock.Anything, q).Return([]league.League{mega}, nil).Twice()
	next.On("AddParticipant", mock.Anything, "l1", "u1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	for i := 0; i < 3; i++ {
		got, err := repo.List(ctx, q)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Mega", got[0].Name)
		assert.True(t, got[0].EntryFee.Equal(decimal.NewFromInt(49)))
	}

	require.NoError(t, repo.AddParticipant(ctx, "l1", "u1", time.Now()))

	_, err := repo.List(ctx, q)
	require.NoError(t, err)
	next.AssertNumberOfCalls(t, "List", 2)
}

func TestLeagueRepository_FailedJoinKeepsCache(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, newTestCache())

	next.On("GetByID", mock.Anything, "l1").Return(league.League{ID: "l1", MaxTeams: 2, TeamsCount: 2}, true, nil).Once()
	next.On("AddParticipant", mock.Anything, "l1", "u1", mock.Anything).Return(league.ErrLeagueFull).Once()

	_, ok, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	require.True(t, ok)

	err = repo.AddParticipant(ctx, "l1", "u1", time.Now())
	require.ErrorIs(t, err, league.ErrLeagueFull)

	got, ok, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.TeamsCount)
}

func TestLeagueRepository_CachesMissingLeague(t *testing.T) {
	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, newTestCache())

	next.On("GetByID", mock.Anything, "nope").Return(league.League{}, false, nil).Once()

	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestMatchRepository_StatusChangeInvalidates(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, newTestCache())

	upcoming := match.Match{ID: "m1", Team1: "IND", Team2: "AUS", Status: match.StatusUpcoming}
	next.On("GetByID", mock.Anything, "m1").Return(upcoming, true, nil).Once()
	next.On("UpdateStatus", mock.Anything, "m1", match.StatusCompleted).Return(nil).Once()

	got, _, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusUpcoming, got.Status)

	require.NoError(t, repo.UpdateStatus(ctx, "m1", match.StatusCompleted))

	completed := upcoming
	completed.Status = match.StatusCompleted
	next.On("GetByID", mock.Anything, "m1").Return(completed, true, nil).Once()

	got, _, err = repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, got.Status)
}

func TestMatchRepository_LoadErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, newTestCache())

	next.On("List", mock.Anything, match.StatusLive).Return(nil, errors.New("db down")).Once()
	next.On("List", mock.Anything, match.StatusLive).Return([]match.Match{{ID: "m2"}}, nil).Once()

	_, err := repo.List(ctx, match.StatusLive)
	require.Error(t, err)

	got, err := repo.List(ctx, match.StatusLive)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
