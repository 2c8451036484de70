package scoring

import (
	"fmt"
	"time"
)

// PlayerMatchStats is one player's raw performance in one match.
// Omitted fields decode as zero.
type PlayerMatchStats struct {
	PlayerID   string    `json:"player_id"`
	MatchID    string    `json:"match_id,omitempty"`
	Runs       int       `json:"runs"`
	Fours      int       `json:"fours"`
	Sixes      int       `json:"sixes"`
	Wickets    int       `json:"wickets"`
	Maidens    int       `json:"maidens"`
	Catches    int       `json:"catches"`
	Stumpings  int       `json:"stumpings"`
	RunOuts    int       `json:"run_outs"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (s PlayerMatchStats) Validate() error {
	counters := []struct {
		name  string
		value int
	}{
		{"runs", s.Runs},
		{"fours", s.Fours},
		{"sixes", s.Sixes},
		{"wickets", s.Wickets},
		{"maidens", s.Maidens},
		{"catches", s.Catches},
		{"stumpings", s.Stumpings},
		{"run_outs", s.RunOuts},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidStats, c.name, c.value)
		}
	}
	return nil
}

const MaxTeamPlayers = 11

// FantasyTeam is a user's pick of players for one match inside one league.
// Points stays nil until the match is finalized.
type FantasyTeam struct {
	ID        string
	UserID    string
	MatchID   string
	LeagueID  string
	PlayerIDs []string
	Points    *int
	UpdatedAt time.Time
}

func (t FantasyTeam) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("team user id is required")
	}
	if t.MatchID == "" {
		return fmt.Errorf("team match id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if len(t.PlayerIDs) == 0 || len(t.PlayerIDs) > MaxTeamPlayers {
		return fmt.Errorf("%w: expected 1..%d players, got %d", ErrInvalidTeam, MaxTeamPlayers, len(t.PlayerIDs))
	}

	seen := make(map[string]struct{}, len(t.PlayerIDs))
	for _, id := range t.PlayerIDs {
		if id == "" {
			return fmt.Errorf("%w: player id is required", ErrInvalidTeam)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate player %s", ErrInvalidTeam, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// PlayerPoints is the computed total for one player in a match.
type PlayerPoints struct {
	PlayerID string
	Points   int
}
