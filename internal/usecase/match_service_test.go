package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/fantasy11/internal/mocks/domain/match"
	scoringmock "github.com/riskibarqy/fantasy11/internal/mocks/domain/scoring"
	"github.com/stretchr/testify/mock"
)

func TestMatchService_ListMatches(t *testing.T) {
	svc := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()), memory.NewTeamRepository())

	all, err := svc.ListMatches(context.Background(), "all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(all))
	}

	upcoming, err := svc.ListMatches(context.Background(), "upcoming")
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != memory.MatchIDIndAus {
		t.Fatalf("unexpected upcoming matches: %+v", upcoming)
	}

	if _, err := svc.ListMatches(context.Background(), "postponed"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_GetMatchNotFound(t *testing.T) {
	svc := NewMatchService(memory.NewMatchRepository(nil), memory.NewTeamRepository())
	if _, err := svc.GetMatch(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_ListMyMatchesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := scoringmock.NewTeamRepository(t)
	svc := NewMatchService(matchRepo, teamRepo)

	teamRepo.
		On("ListByUser", mock.Anything, "u1").
		Return([]scoring.FantasyTeam{
			{ID: "t1", UserID: "u1", MatchID: "m-live"},
			{ID: "t2", UserID: "u1", MatchID: "m-done"},
		}, nil).
		Once()
	matchRepo.On("GetByID", mock.Anything, "m-live").Return(match.Match{ID: "m-live", Status: match.StatusLive}, true, nil).Once()
	matchRepo.On("GetByID", mock.Anything, "m-done").Return(match.Match{ID: "m-done", Status: match.StatusCompleted}, true, nil).Once()

	got, err := svc.ListMyMatches(ctx, "u1", "completed")
	if err != nil {
		t.Fatalf("list my matches: %v", err)
	}
	if len(got) != 1 || got[0].Team.ID != "t2" {
		t.Fatalf("unexpected my matches: %+v", got)
	}
}
