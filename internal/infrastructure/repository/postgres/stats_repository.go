package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	qb "github.com/riskibarqy/fantasy11/internal/platform/querybuilder"
)

var statsColumns = []string{
	"match_id", "player_id", "runs", "fours", "sixes", "wickets",
	"maidens", "catches", "stumpings", "run_outs", "recorded_at",
}

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// RecordMany writes the whole batch or nothing. A player already recorded
// for the match rolls the batch back with scoring.ErrStatsAlreadyRecorded.
func (r *StatsRepository) RecordMany(ctx context.Context, matchID string, stats []scoring.PlayerMatchStats) error {
	if len(stats) == 0 {
		return nil
	}

	ins := qb.Insert("player_match_stats", statsColumns...).
		Suffix("ON CONFLICT (match_id, player_id) DO NOTHING")
	for _, s := range stats {
		ins.Row(matchID, s.PlayerID, s.Runs, s.Fours, s.Sixes, s.Wickets,
			s.Maidens, s.Catches, s.Stumpings, s.RunOuts, s.RecordedAt)
	}
	query, args, err := ins.Build()
	if err != nil {
		return fmt.Errorf("build insert stats query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record stats tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert player stats: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert player stats rows affected: %w", err)
	}
	if inserted != int64(len(stats)) {
		return fmt.Errorf("%w: match=%s", scoring.ErrStatsAlreadyRecorded, matchID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record stats tx: %w", err)
	}
	return nil
}

func (r *StatsRepository) ListByMatch(ctx context.Context, matchID string) ([]scoring.PlayerMatchStats, error) {
	query, args, err := qb.Select(statsColumns...).
		From("player_match_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_id").
		Build()
	if err != nil {
		return nil, fmt.Errorf("build list stats query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player stats: %w", err)
	}

	out := make([]scoring.PlayerMatchStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.PlayerMatchStats{
			PlayerID:   row.PlayerID,
			MatchID:    row.MatchID,
			Runs:       row.Runs,
			Fours:      row.Fours,
			Sixes:      row.Sixes,
			Wickets:    row.Wickets,
			Maidens:    row.Maidens,
			Catches:    row.Catches,
			Stumpings:  row.Stumpings,
			RunOuts:    row.RunOuts,
			RecordedAt: row.RecordedAt,
		})
	}
	return out, nil
}
