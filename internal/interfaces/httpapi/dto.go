package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/domain/user"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/usecase"
	"github.com/shopspring/decimal"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=254"`
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required_without=Mobile"`
	Mobile   string `json:"mobile" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Email  *string `json:"email" validate:"omitempty,max=254"`
	Mobile *string `json:"mobile"`
}

type submitTeamRequest struct {
	LeagueID  string   `json:"league_id" validate:"required"`
	PlayerIDs []string `json:"player_ids" validate:"required,min=1,max=11,unique,dive,required"`
}

type addMoneyRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type recordStatsRequest struct {
	Stats []scoring.PlayerMatchStats `json:"stats" validate:"required,min=1,dive"`
}

type userDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	CreatedAt string `json:"created_at"`
}

type authDTO struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	User      userDTO `json:"user"`
}

type verifyDTO struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id"`
}

type matchDTO struct {
	ID        string `json:"id"`
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	MatchDate string `json:"match_date"`
	Status    string `json:"status"`
	Score     string `json:"score"`
}

type myMatchDTO struct {
	matchDTO
	TeamID    string   `json:"team_id"`
	LeagueID  string   `json:"league_id"`
	PlayerIDs []string `json:"player_ids"`
	Points    *int     `json:"points"`
}

type leagueDTO struct {
	ID         string `json:"id"`
	MatchID    string `json:"match_id"`
	Name       string `json:"name"`
	PrizePool  string `json:"prize_pool"`
	EntryFee   string `json:"entry_fee"`
	MaxTeams   int    `json:"max_teams"`
	TeamsCount int    `json:"teams_count"`
	SpotsLeft  int    `json:"spots_left"`
	Popularity int    `json:"popularity"`
	IsFree     bool   `json:"is_free"`
}

type joinLeagueDTO struct {
	League      leagueDTO       `json:"league"`
	Transaction *transactionDTO `json:"transaction,omitempty"`
}

type transactionDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type balanceDTO struct {
	UserID  string `json:"user_id"`
	Balance string `json:"balance"`
}

type addMoneyDTO struct {
	Transaction transactionDTO `json:"transaction"`
	Balance     string         `json:"balance"`
}

type fantasyTeamDTO struct {
	ID        string   `json:"id"`
	MatchID   string   `json:"match_id"`
	LeagueID  string   `json:"league_id"`
	PlayerIDs []string `json:"player_ids"`
	Points    *int     `json:"points"`
	UpdatedAt string   `json:"updated_at"`
}

type teamPointsDTO struct {
	TeamID    string `json:"team_id"`
	MatchID   string `json:"match_id"`
	Points    int    `json:"points"`
	Finalized bool   `json:"finalized"`
}

type playerPointsDTO struct {
	PlayerID string `json:"player_id"`
	Points   int    `json:"points"`
}

type recordStatsDTO struct {
	MatchID  string `json:"match_id"`
	Recorded int    `json:"recorded"`
}

type finalizeDTO struct {
	MatchID     string `json:"match_id"`
	TeamsScored int    `json:"teams_scored"`
	PlayerCount int    `json:"player_count"`
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func authToDTO(v usecase.AuthResult) authDTO {
	return authDTO{
		Token:     v.Token.Value,
		ExpiresAt: formatTime(v.Token.ExpiresAt),
		User:      userToDTO(v.User),
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:        m.ID,
		Team1:     m.Team1,
		Team2:     m.Team2,
		MatchDate: formatTime(m.MatchDate),
		Status:    string(m.Status),
		Score:     m.Score,
	}
}

func myMatchToDTO(v usecase.MyMatch) myMatchDTO {
	return myMatchDTO{
		matchDTO:  matchToDTO(v.Match),
		TeamID:    v.Team.ID,
		LeagueID:  v.Team.LeagueID,
		PlayerIDs: append([]string(nil), v.Team.PlayerIDs...),
		Points:    v.Team.Points,
	}
}

func leagueToDTO(l league.League) leagueDTO {
	spots := l.MaxTeams - l.TeamsCount
	if spots < 0 {
		spots = 0
	}
	return leagueDTO{
		ID:         l.ID,
		MatchID:    l.MatchID,
		Name:       l.Name,
		PrizePool:  formatMoney(l.PrizePool),
		EntryFee:   formatMoney(l.EntryFee),
		MaxTeams:   l.MaxTeams,
		TeamsCount: l.TeamsCount,
		SpotsLeft:  spots,
		Popularity: l.Popularity,
		IsFree:     l.IsFree(),
	}
}

func transactionToDTO(tx wallet.Transaction) transactionDTO {
	return transactionDTO{
		ID:          tx.ID,
		Type:        string(tx.Kind),
		Amount:      formatMoney(tx.Amount),
		Description: tx.Description,
		CreatedAt:   formatTime(tx.CreatedAt),
	}
}

func fantasyTeamToDTO(t scoring.FantasyTeam) fantasyTeamDTO {
	return fantasyTeamDTO{
		ID:        t.ID,
		MatchID:   t.MatchID,
		LeagueID:  t.LeagueID,
		PlayerIDs: append([]string(nil), t.PlayerIDs...),
		Points:    t.Points,
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}
