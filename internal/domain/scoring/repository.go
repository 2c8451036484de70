package scoring

import "context"

// StatsRepository is the match-statistics source.
type StatsRepository interface {
	RecordMany(ctx context.Context, matchID string, stats []PlayerMatchStats) error
	ListByMatch(ctx context.Context, matchID string) ([]PlayerMatchStats, error)
}

type TeamRepository interface {
	Upsert(ctx context.Context, team FantasyTeam) error
	GetByUserAndMatch(ctx context.Context, userID, matchID string) (FantasyTeam, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]FantasyTeam, error)
	ListByUser(ctx context.Context, userID string) ([]FantasyTeam, error)
	SavePoints(ctx context.Context, teamID string, points int) error
}
