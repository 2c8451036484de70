package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	qb "github.com/riskibarqy/fantasy11/internal/platform/querybuilder"
)

var matchColumns = []string{"id", "team1", "team2", "match_date", "status", "score", "created_at"}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, status match.Status) ([]match.Match, error) {
	q := qb.Select(matchColumns...).From("matches").OrderBy("match_date", "id")
	if status != "" {
		q.Where(qb.Eq("status", string(status)))
	}
	query, args, err := q.Build()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromMatchRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").Where(qb.Eq("id", matchID)).Build()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return fromMatchRow(row), true, nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID string, status match.Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE matches SET status = $1 WHERE id = $2`, string(status), matchID)
	if err != nil {
		return fmt.Errorf("update match status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update match status: no row for id=%s", matchID)
	}
	return nil
}

func fromMatchRow(row matchTableModel) match.Match {
	return match.Match{
		ID:        row.ID,
		Team1:     row.Team1,
		Team2:     row.Team2,
		MatchDate: row.MatchDate,
		Status:    match.Status(row.Status),
		Score:     row.Score,
		CreatedAt: row.CreatedAt,
	}
}
