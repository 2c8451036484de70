package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
)

type MatchService struct {
	matchRepo match.Repository
	teamRepo  scoring.TeamRepository
}

// MyMatch is a match the user has entered a fantasy team for.
type MyMatch struct {
	Match match.Match
	Team  scoring.FantasyTeam
}

func NewMatchService(matchRepo match.Repository, teamRepo scoring.TeamRepository) *MatchService {
	return &MatchService{matchRepo: matchRepo, teamRepo: teamRepo}
}

func (s *MatchService) ListMatches(ctx context.Context, status string) ([]match.Match, error) {
	parsed, err := match.ParseStatusFilter(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	matches, err := s.matchRepo.List(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) ListMyMatches(ctx context.Context, userID, status string) ([]MyMatch, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	parsed, err := match.ParseStatusFilter(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user teams: %w", err)
	}

	out := make([]MyMatch, 0, len(teams))
	for _, team := range teams {
		m, exists, err := s.matchRepo.GetByID(ctx, team.MatchID)
		if err != nil {
			return nil, fmt.Errorf("get match %s: %w", team.MatchID, err)
		}
		if !exists {
			continue
		}
		if parsed != "" && m.Status != parsed {
			continue
		}
		out = append(out, MyMatch{Match: m, Team: team})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Match.MatchDate.After(out[j].Match.MatchDate)
	})
	return out, nil
}
