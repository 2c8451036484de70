package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
)

type LeagueRepository struct {
	mu           sync.RWMutex
	items        map[string]league.League
	orders       []string
	participants map[string]league.Participant
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:        items,
		orders:       orders,
		participants: make(map[string]league.Participant),
	}
}

func (r *LeagueRepository) List(_ context.Context, q league.ListQuery) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return q.Apply(out), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) IsParticipant(_ context.Context, leagueID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.participants[participantKey(leagueID, userID)]
	return ok, nil
}

func (r *LeagueRepository) AddParticipant(_ context.Context, leagueID, userID string, joinedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league not found: %s", leagueID)
	}
	key := participantKey(leagueID, userID)
	if _, exists := r.participants[key]; exists {
		return league.ErrAlreadyJoined
	}
	if l.IsFull() {
		return league.ErrLeagueFull
	}

	r.participants[key] = league.Participant{LeagueID: leagueID, UserID: userID, JoinedAt: joinedAt}
	l.TeamsCount++
	r.items[leagueID] = l
	return nil
}

func participantKey(leagueID, userID string) string {
	return leagueID + "::" + userID
}
