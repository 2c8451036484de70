package memory

import (
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/shopspring/decimal"
)

const (
	MatchIDIndAus = "match-ind-aus"
	MatchIDEngNz  = "match-eng-nz"
	MatchIDPakSa  = "match-pak-sa"

	LeagueIDMega     = "league-mega-contest"
	LeagueIDHeadHead = "league-head-to-head"
	LeagueIDPractice = "league-practice"
)

var seedEpoch = time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: MatchIDIndAus, Team1: "India", Team2: "Australia", MatchDate: seedEpoch.Add(72 * time.Hour), Status: match.StatusUpcoming, CreatedAt: seedEpoch},
		{ID: MatchIDEngNz, Team1: "England", Team2: "New Zealand", MatchDate: seedEpoch.Add(2 * time.Hour), Status: match.StatusLive, Score: "ENG 145/3 (18.2)", CreatedAt: seedEpoch},
		{ID: MatchIDPakSa, Team1: "Pakistan", Team2: "South Africa", MatchDate: seedEpoch.Add(-48 * time.Hour), Status: match.StatusCompleted, Score: "PAK 287/6, SA 254 all out", CreatedAt: seedEpoch},
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:         LeagueIDMega,
			MatchID:    MatchIDIndAus,
			Name:       "Mega Contest",
			PrizePool:  decimal.NewFromInt(1000000),
			EntryFee:   decimal.NewFromInt(49),
			MaxTeams:   10000,
			TeamsCount: 7342,
			Popularity: 98,
			CreatedAt:  seedEpoch,
		},
		{
			ID:         LeagueIDHeadHead,
			MatchID:    MatchIDIndAus,
			Name:       "Head to Head",
			PrizePool:  decimal.NewFromInt(180),
			EntryFee:   decimal.NewFromInt(100),
			MaxTeams:   2,
			TeamsCount: 0,
			Popularity: 72,
			CreatedAt:  seedEpoch,
		},
		{
			ID:         LeagueIDPractice,
			MatchID:    MatchIDIndAus,
			Name:       "Practice Contest",
			PrizePool:  decimal.Zero,
			EntryFee:   decimal.Zero,
			MaxTeams:   50000,
			TeamsCount: 12890,
			Popularity: 91,
			CreatedAt:  seedEpoch,
		},
	}
}
