package scoring

import (
	"errors"
	"testing"
)

func TestCalculatePlayerPoints(t *testing.T) {
	tests := []struct {
		name  string
		stats PlayerMatchStats
		want  int
	}{
		{name: "empty stats", stats: PlayerMatchStats{}, want: 0},
		{
			name:  "below half century uses weights only",
			stats: PlayerMatchStats{Runs: 49, Fours: 4, Sixes: 2, Wickets: 1, Maidens: 1, Catches: 2, Stumpings: 1, RunOuts: 1},
			want:  49 + 4 + 2*2 + 25 + 12 + 2*8 + 12 + 6,
		},
		{name: "half century", stats: PlayerMatchStats{Runs: 50}, want: 58},
		{name: "ninety nine", stats: PlayerMatchStats{Runs: 99}, want: 107},
		{name: "century stacks both bonuses", stats: PlayerMatchStats{Runs: 100}, want: 124},
		{name: "bowler only", stats: PlayerMatchStats{Wickets: 5, Maidens: 2}, want: 149},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculatePlayerPoints(tc.stats)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("points mismatch: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestCalculatePlayerPoints_BelowHalfCenturyFormula(t *testing.T) {
	for runs := 0; runs < 50; runs += 7 {
		for extra := 0; extra < 3; extra++ {
			stats := PlayerMatchStats{
				Runs: runs, Fours: extra, Sixes: extra + 1, Wickets: extra,
				Maidens: extra, Catches: extra + 2, Stumpings: extra, RunOuts: extra + 1,
			}
			want := stats.Runs + stats.Fours + 2*stats.Sixes + 25*stats.Wickets + 12*stats.Maidens +
				8*stats.Catches + 12*stats.Stumpings + 6*stats.RunOuts

			got, err := CalculatePlayerPoints(stats)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Fatalf("runs=%d extra=%d: got=%d want=%d", runs, extra, got, want)
			}
		}
	}
}

func TestCalculatePlayerPoints_RejectsNegative(t *testing.T) {
	cases := []PlayerMatchStats{
		{Runs: -1},
		{Sixes: -2},
		{RunOuts: -1},
	}
	for _, stats := range cases {
		if _, err := CalculatePlayerPoints(stats); !errors.Is(err, ErrInvalidStats) {
			t.Fatalf("expected ErrInvalidStats for %+v, got %v", stats, err)
		}
	}
}

func TestCalculateTeamPoints(t *testing.T) {
	if got := CalculateTeamPoints(nil); got != 0 {
		t.Fatalf("empty team should score 0, got %d", got)
	}

	players := make([]PlayerMatchStats, 11)
	for i := range players {
		players[i] = PlayerMatchStats{Runs: 10, Fours: 2, Sixes: 4}
	}
	if got := CalculateTeamPoints(players); got != 220 {
		t.Fatalf("team total mismatch: got=%d want=220", got)
	}

	players[0] = PlayerMatchStats{Runs: -5}
	if got := CalculateTeamPoints(players); got != 200 {
		t.Fatalf("invalid entry should count as zero: got=%d want=200", got)
	}
}

func TestFantasyTeamValidate(t *testing.T) {
	base := FantasyTeam{UserID: "u1", MatchID: "m1", LeagueID: "l1", PlayerIDs: []string{"p1", "p2"}}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := base
	dup.PlayerIDs = []string{"p1", "p1"}
	if err := dup.Validate(); !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam for duplicates, got %v", err)
	}

	tooMany := base
	tooMany.PlayerIDs = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	if err := tooMany.Validate(); !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam for oversized team, got %v", err)
	}
}
