package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	qb "github.com/riskibarqy/fantasy11/internal/platform/querybuilder"
)

var teamColumns = []string{"id", "user_id", "match_id", "league_id", "player_ids", "points", "updated_at"}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Upsert keeps the existing row id when the user already has a team for the match.
func (r *TeamRepository) Upsert(ctx context.Context, team scoring.FantasyTeam) error {
	const query = `
INSERT INTO fantasy_teams (id, user_id, match_id, league_id, player_ids, points, updated_at)
VALUES (:id, :user_id, :match_id, :league_id, :player_ids, :points, :updated_at)
ON CONFLICT (user_id, match_id) DO UPDATE SET
    league_id = EXCLUDED.league_id,
    player_ids = EXCLUDED.player_ids,
    updated_at = EXCLUDED.updated_at`

	bound, args, err := sqlx.Named(query, toTeamRow(team))
	if err != nil {
		return fmt.Errorf("bind upsert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(bound), args...); err != nil {
		return fmt.Errorf("upsert fantasy team: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByUserAndMatch(ctx context.Context, userID, matchID string) (scoring.FantasyTeam, bool, error) {
	query, args, err := qb.Select(teamColumns...).
		From("fantasy_teams").
		Where(qb.Eq("user_id", userID), qb.Eq("match_id", matchID)).
		Build()
	if err != nil {
		return scoring.FantasyTeam{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.FantasyTeam{}, false, nil
		}
		return scoring.FantasyTeam{}, false, fmt.Errorf("get fantasy team: %w", err)
	}
	return fromTeamRow(row), true, nil
}

func (r *TeamRepository) ListByMatch(ctx context.Context, matchID string) ([]scoring.FantasyTeam, error) {
	return r.list(ctx, qb.Eq("match_id", matchID))
}

func (r *TeamRepository) ListByUser(ctx context.Context, userID string) ([]scoring.FantasyTeam, error) {
	return r.list(ctx, qb.Eq("user_id", userID))
}

func (r *TeamRepository) SavePoints(ctx context.Context, teamID string, points int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE fantasy_teams SET points = $1 WHERE id = $2`, points, teamID)
	if err != nil {
		return fmt.Errorf("save team points: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("save team points: no row for id=%s", teamID)
	}
	return nil
}

func (r *TeamRepository) list(ctx context.Context, pred qb.Pred) ([]scoring.FantasyTeam, error) {
	query, args, err := qb.Select(teamColumns...).From("fantasy_teams").Where(pred).OrderBy("id").Build()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy teams: %w", err)
	}

	out := make([]scoring.FantasyTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromTeamRow(row))
	}
	return out, nil
}

func toTeamRow(team scoring.FantasyTeam) fantasyTeamTableModel {
	row := fantasyTeamTableModel{
		ID:        team.ID,
		UserID:    team.UserID,
		MatchID:   team.MatchID,
		LeagueID:  team.LeagueID,
		PlayerIDs: pq.StringArray(append([]string(nil), team.PlayerIDs...)),
		UpdatedAt: team.UpdatedAt,
	}
	if team.Points != nil {
		row.Points = sql.NullInt64{Int64: int64(*team.Points), Valid: true}
	}
	return row
}

func fromTeamRow(row fantasyTeamTableModel) scoring.FantasyTeam {
	team := scoring.FantasyTeam{
		ID:        row.ID,
		UserID:    row.UserID,
		MatchID:   row.MatchID,
		LeagueID:  row.LeagueID,
		PlayerIDs: append([]string(nil), row.PlayerIDs...),
		UpdatedAt: row.UpdatedAt,
	}
	if row.Points.Valid {
		points := int(row.Points.Int64)
		team.Points = &points
	}
	return team
}
