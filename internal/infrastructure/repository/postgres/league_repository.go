package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy11/internal/domain/league"
	qb "github.com/riskibarqy/fantasy11/internal/platform/querybuilder"
)

var leagueColumns = []string{
	"id", "match_id", "name", "prize_pool", "entry_fee",
	"max_teams", "teams_count", "popularity", "created_at",
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context, q league.ListQuery) ([]league.League, error) {
	sel := qb.Select(leagueColumns...).From("leagues")
	switch q.Filter {
	case league.FilterFree:
		sel.Where(qb.Raw("entry_fee = 0"))
	case league.FilterPaid:
		sel.Where(qb.Gt("entry_fee", 0))
	case league.FilterPopular:
		sel.Where(qb.Gte("popularity", league.PopularThreshold))
	}
	switch q.Sort {
	case league.SortTeams:
		sel.OrderBy("teams_count DESC", "id")
	case league.SortEntry:
		sel.OrderBy("entry_fee ASC", "id")
	default:
		sel.OrderBy("prize_pool DESC", "id")
	}

	query, args, err := sel.Build()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromLeagueRow(row))
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueColumns...).From("leagues").Where(qb.Eq("id", leagueID)).Build()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}
	return fromLeagueRow(row), true, nil
}

func (r *LeagueRepository) IsParticipant(ctx context.Context, leagueID, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM league_participants WHERE league_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, leagueID, userID); err != nil {
		return false, fmt.Errorf("check league participant: %w", err)
	}
	return exists, nil
}

func (r *LeagueRepository) AddParticipant(ctx context.Context, leagueID, userID string, joinedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add participant tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("max_teams", "teams_count").
		From("leagues").
		Where(qb.Eq("id", leagueID)).
		ForUpdate().
		Build()
	if err != nil {
		return fmt.Errorf("build lock league query: %w", err)
	}

	var capacity struct {
		MaxTeams   int `db:"max_teams"`
		TeamsCount int `db:"teams_count"`
	}
	if err := tx.GetContext(ctx, &capacity, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("lock league: no row for id=%s", leagueID)
		}
		return fmt.Errorf("lock league: %w", err)
	}
	if capacity.TeamsCount >= capacity.MaxTeams {
		return fmt.Errorf("%w: league=%s", league.ErrLeagueFull, leagueID)
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO league_participants (league_id, user_id, joined_at)
VALUES ($1, $2, $3)
ON CONFLICT (league_id, user_id) DO NOTHING`, leagueID, userID, joinedAt)
	if err != nil {
		return fmt.Errorf("insert league participant: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert league participant rows affected: %w", err)
	}
	if inserted == 0 {
		return fmt.Errorf("%w: league=%s user=%s", league.ErrAlreadyJoined, leagueID, userID)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE leagues SET teams_count = teams_count + 1 WHERE id = $1`, leagueID); err != nil {
		return fmt.Errorf("increment league teams count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add participant tx: %w", err)
	}
	return nil
}

func fromLeagueRow(row leagueTableModel) league.League {
	return league.League{
		ID:         row.ID,
		MatchID:    row.MatchID,
		Name:       row.Name,
		PrizePool:  row.PrizePool,
		EntryFee:   row.EntryFee,
		MaxTeams:   row.MaxTeams,
		TeamsCount: row.TeamsCount,
		Popularity: row.Popularity,
		CreatedAt:  row.CreatedAt,
	}
}
