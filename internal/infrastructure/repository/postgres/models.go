package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type userTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Mobile       string    `db:"mobile"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type matchTableModel struct {
	ID        string    `db:"id"`
	Team1     string    `db:"team1"`
	Team2     string    `db:"team2"`
	MatchDate time.Time `db:"match_date"`
	Status    string    `db:"status"`
	Score     string    `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

type leagueTableModel struct {
	ID         string          `db:"id"`
	MatchID    string          `db:"match_id"`
	Name       string          `db:"name"`
	PrizePool  decimal.Decimal `db:"prize_pool"`
	EntryFee   decimal.Decimal `db:"entry_fee"`
	MaxTeams   int             `db:"max_teams"`
	TeamsCount int             `db:"teams_count"`
	Popularity int             `db:"popularity"`
	CreatedAt  time.Time       `db:"created_at"`
}

type fantasyTeamTableModel struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	MatchID   string         `db:"match_id"`
	LeagueID  string         `db:"league_id"`
	PlayerIDs pq.StringArray `db:"player_ids"`
	Points    sql.NullInt64  `db:"points"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type playerStatsTableModel struct {
	MatchID    string    `db:"match_id"`
	PlayerID   string    `db:"player_id"`
	Runs       int       `db:"runs"`
	Fours      int       `db:"fours"`
	Sixes      int       `db:"sixes"`
	Wickets    int       `db:"wickets"`
	Maidens    int       `db:"maidens"`
	Catches    int       `db:"catches"`
	Stumpings  int       `db:"stumpings"`
	RunOuts    int       `db:"run_outs"`
	RecordedAt time.Time `db:"recorded_at"`
}

type walletTransactionTableModel struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Kind        string          `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
