package scoring

import "errors"

var (
	ErrInvalidStats         = errors.New("invalid player stats")
	ErrInvalidTeam          = errors.New("invalid fantasy team")
	ErrStatsAlreadyRecorded = errors.New("player stats already recorded")
)

// Table holds the per-unit weights and milestone bonuses.
type Table struct {
	Run      int
	Four     int
	Six      int
	Wicket   int
	Maiden   int
	Catch    int
	Stumping int
	RunOut   int

	HalfCenturyRuns  int
	HalfCenturyBonus int
	CenturyRuns      int
	CenturyBonus     int
}

// DefaultTable is the fixed scoring table. Both milestone bonuses apply at 100+ runs.
var DefaultTable = Table{
	Run:      1,
	Four:     1,
	Six:      2,
	Wicket:   25,
	Maiden:   12,
	Catch:    8,
	Stumping: 12,
	RunOut:   6,

	HalfCenturyRuns:  50,
	HalfCenturyBonus: 8,
	CenturyRuns:      100,
	CenturyBonus:     16,
}

func (t Table) Points(stats PlayerMatchStats) (int, error) {
	if err := stats.Validate(); err != nil {
		return 0, err
	}

	points := stats.Runs*t.Run +
		stats.Fours*t.Four +
		stats.Sixes*t.Six +
		stats.Wickets*t.Wicket +
		stats.Maidens*t.Maiden +
		stats.Catches*t.Catch +
		stats.Stumpings*t.Stumping +
		stats.RunOuts*t.RunOut

	if stats.Runs >= t.HalfCenturyRuns {
		points += t.HalfCenturyBonus
	}
	if stats.Runs >= t.CenturyRuns {
		points += t.CenturyBonus
	}
	return points, nil
}

// TeamPoints sums player points. Invalid entries count as an all-zero record.
func (t Table) TeamPoints(players []PlayerMatchStats) int {
	total := 0
	for _, p := range players {
		points, err := t.Points(p)
		if err != nil {
			continue
		}
		total += points
	}
	return total
}

func CalculatePlayerPoints(stats PlayerMatchStats) (int, error) {
	return DefaultTable.Points(stats)
}

func CalculateTeamPoints(players []PlayerMatchStats) int {
	return DefaultTable.TeamPoints(players)
}
