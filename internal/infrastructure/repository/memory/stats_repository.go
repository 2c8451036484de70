package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
)

type StatsRepository struct {
	mu      sync.RWMutex
	byMatch map[string]map[string]scoring.PlayerMatchStats
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{byMatch: make(map[string]map[string]scoring.PlayerMatchStats)}
}

// RecordMany stores all records or none.
func (r *StatsRepository) RecordMany(_ context.Context, matchID string, stats []scoring.PlayerMatchStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.byMatch[matchID]
	for _, s := range stats {
		if _, ok := existing[s.PlayerID]; ok {
			return fmt.Errorf("%w: match=%s player=%s", scoring.ErrStatsAlreadyRecorded, matchID, s.PlayerID)
		}
	}

	if existing == nil {
		existing = make(map[string]scoring.PlayerMatchStats, len(stats))
		r.byMatch[matchID] = existing
	}
	for _, s := range stats {
		s.MatchID = matchID
		existing[s.PlayerID] = s
	}
	return nil
}

func (r *StatsRepository) ListByMatch(_ context.Context, matchID string) ([]scoring.PlayerMatchStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.PlayerMatchStats, 0, len(r.byMatch[matchID]))
	for _, s := range r.byMatch[matchID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}
