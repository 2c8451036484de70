package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.FantasyTeam
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{items: make(map[string]scoring.FantasyTeam)}
}

// Upsert keys teams by (user, match); an existing entry keeps its ID.
func (r *TeamRepository) Upsert(_ context.Context, team scoring.FantasyTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := teamKey(team.UserID, team.MatchID)
	if prev, ok := r.items[key]; ok {
		team.ID = prev.ID
	}
	r.items[key] = cloneTeam(team)
	return nil
}

func (r *TeamRepository) GetByUserAndMatch(_ context.Context, userID, matchID string) (scoring.FantasyTeam, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.items[teamKey(userID, matchID)]
	if !ok {
		return scoring.FantasyTeam{}, false, nil
	}
	return cloneTeam(team), true, nil
}

func (r *TeamRepository) ListByMatch(_ context.Context, matchID string) ([]scoring.FantasyTeam, error) {
	return r.list(func(t scoring.FantasyTeam) bool { return t.MatchID == matchID }), nil
}

func (r *TeamRepository) ListByUser(_ context.Context, userID string) ([]scoring.FantasyTeam, error) {
	return r.list(func(t scoring.FantasyTeam) bool { return t.UserID == userID }), nil
}

func (r *TeamRepository) SavePoints(_ context.Context, teamID string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, team := range r.items {
		if team.ID != teamID {
			continue
		}
		p := points
		team.Points = &p
		r.items[key] = team
		return nil
	}
	return fmt.Errorf("fantasy team not found: %s", teamID)
}

func (r *TeamRepository) list(keep func(scoring.FantasyTeam) bool) []scoring.FantasyTeam {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.FantasyTeam, 0)
	for _, team := range r.items {
		if keep(team) {
			out = append(out, cloneTeam(team))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func teamKey(userID, matchID string) string {
	return userID + "::" + matchID
}

func cloneTeam(t scoring.FantasyTeam) scoring.FantasyTeam {
	copied := t
	copied.PlayerIDs = append([]string(nil), t.PlayerIDs...)
	if t.Points != nil {
		p := *t.Points
		copied.Points = &p
	}
	return copied
}
