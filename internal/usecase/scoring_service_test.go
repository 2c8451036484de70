package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/fantasy11/internal/mocks/domain/match"
	scoringmock "github.com/riskibarqy/fantasy11/internal/mocks/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/platform/id"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var seedJoinTime = time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC)

type scoringFixture struct {
	svc     *ScoringService
	matches *memory.MatchRepository
	leagues *memory.LeagueRepository
	teams   *memory.TeamRepository
	stats   *memory.StatsRepository
}

func newScoringFixture(t *testing.T) scoringFixture {
	t.Helper()

	f := scoringFixture{
		matches: memory.NewMatchRepository(memory.SeedMatches()),
		leagues: memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:   memory.NewTeamRepository(),
		stats:   memory.NewStatsRepository(),
	}
	f.svc = NewScoringService(f.matches, f.leagues, f.teams, f.stats, &id.Sequence{Prefix: "team-"}, 4, logging.NewNop())
	return f
}

func (f scoringFixture) join(t *testing.T, userID string) {
	t.Helper()
	if err := f.leagues.AddParticipant(context.Background(), memory.LeagueIDPractice, userID, seedJoinTime); err != nil {
		t.Fatalf("join %s: %v", userID, err)
	}
}

func TestScoringService_SubmitTeam(t *testing.T) {
	f := newScoringFixture(t)
	f.join(t, "u1")
	ctx := context.Background()

	team, err := f.svc.SubmitTeam(ctx, SubmitTeamInput{
		UserID:    "u1",
		MatchID:   memory.MatchIDIndAus,
		LeagueID:  memory.LeagueIDPractice,
		PlayerIDs: []string{"kohli", "smith", "bumrah"},
	})
	if err != nil {
		t.Fatalf("submit team: %v", err)
	}
	if team.ID != "team-1" || len(team.PlayerIDs) != 3 {
		t.Fatalf("unexpected team: %+v", team)
	}

	updated, err := f.svc.SubmitTeam(ctx, SubmitTeamInput{
		UserID:    "u1",
		MatchID:   memory.MatchIDIndAus,
		LeagueID:  memory.LeagueIDPractice,
		PlayerIDs: []string{"kohli"},
	})
	if err != nil {
		t.Fatalf("resubmit team: %v", err)
	}
	if updated.ID != team.ID || len(updated.PlayerIDs) != 1 {
		t.Fatalf("resubmission should replace picks and keep id: %+v", updated)
	}
}

func TestScoringService_SubmitTeamRejections(t *testing.T) {
	f := newScoringFixture(t)
	f.join(t, "u1")
	ctx := context.Background()

	tests := []struct {
		name    string
		input   SubmitTeamInput
		wantErr error
	}{
		{
			name:    "not joined",
			input:   SubmitTeamInput{UserID: "u2", MatchID: memory.MatchIDIndAus, LeagueID: memory.LeagueIDPractice, PlayerIDs: []string{"p1"}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "match already live",
			input:   SubmitTeamInput{UserID: "u1", MatchID: memory.MatchIDEngNz, LeagueID: memory.LeagueIDPractice, PlayerIDs: []string{"p1"}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown league",
			input:   SubmitTeamInput{UserID: "u1", MatchID: memory.MatchIDIndAus, LeagueID: "nope", PlayerIDs: []string{"p1"}},
			wantErr: ErrNotFound,
		},
		{
			name:    "duplicate players",
			input:   SubmitTeamInput{UserID: "u1", MatchID: memory.MatchIDIndAus, LeagueID: memory.LeagueIDPractice, PlayerIDs: []string{"p1", " p1"}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty team",
			input:   SubmitTeamInput{UserID: "u1", MatchID: memory.MatchIDIndAus, LeagueID: memory.LeagueIDPractice},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.SubmitTeam(ctx, tc.input); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestScoringService_RecordStats(t *testing.T) {
	f := newScoringFixture(t)
	ctx := context.Background()

	n, err := f.svc.RecordStats(ctx, memory.MatchIDIndAus, []scoring.PlayerMatchStats{
		{PlayerID: "kohli", Runs: 100},
		{PlayerID: "bumrah", Wickets: 3},
	})
	if err != nil {
		t.Fatalf("record stats: %v", err)
	}
	if n != 2 {
		t.Fatalf("unexpected recorded count: %d", n)
	}

	_, err = f.svc.RecordStats(ctx, memory.MatchIDIndAus, []scoring.PlayerMatchStats{{PlayerID: "kohli", Runs: 5}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for re-recording, got %v", err)
	}

	_, err = f.svc.RecordStats(ctx, memory.MatchIDIndAus, []scoring.PlayerMatchStats{{PlayerID: "smith", Fours: -1}})
	if !errors.Is(err, scoring.ErrInvalidStats) {
		t.Fatalf("expected ErrInvalidStats, got %v", err)
	}

	_, err = f.svc.RecordStats(ctx, memory.MatchIDPakSa, []scoring.PlayerMatchStats{{PlayerID: "babar", Runs: 1}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for finalized match, got %v", err)
	}
}

type recordingScheduler struct {
	matchIDs []string
	err      error
}

func (r *recordingScheduler) ScheduleFinalize(_ context.Context, matchID string) error {
	r.matchIDs = append(r.matchIDs, matchID)
	return r.err
}

func TestScoringService_RecordStatsSchedulesFinalize(t *testing.T) {
	f := newScoringFixture(t)
	scheduler := &recordingScheduler{err: errors.New("qstash down")}
	f.svc.SetFinalizeScheduler(scheduler)

	n, err := f.svc.RecordStats(context.Background(), memory.MatchIDIndAus, []scoring.PlayerMatchStats{{PlayerID: "kohli", Runs: 12}})
	if err != nil || n != 1 {
		t.Fatalf("expected stats stored despite scheduler failure, got n=%d err=%v", n, err)
	}
	if len(scheduler.matchIDs) != 1 || scheduler.matchIDs[0] != memory.MatchIDIndAus {
		t.Fatalf("expected one finalize scheduled for %s, got %v", memory.MatchIDIndAus, scheduler.matchIDs)
	}

	_, err = f.svc.RecordStats(context.Background(), memory.MatchIDIndAus, []scoring.PlayerMatchStats{{PlayerID: "kohli", Runs: 1}})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(scheduler.matchIDs) != 1 {
		t.Fatalf("rejected batch must not schedule finalize, got %v", scheduler.matchIDs)
	}
}

func TestScoringService_FinalizeMatch(t *testing.T) {
	f := newScoringFixture(t)
	ctx := context.Background()

	const teams = 11
	for i := 1; i <= teams; i++ {
		userID := fmt.Sprintf("u%d", i)
		f.join(t, userID)
		if _, err := f.svc.SubmitTeam(ctx, SubmitTeamInput{
			UserID:    userID,
			MatchID:   memory.MatchIDIndAus,
			LeagueID:  memory.LeagueIDPractice,
			PlayerIDs: []string{"kohli", "bumrah", "unused"},
		}); err != nil {
			t.Fatalf("submit team %s: %v", userID, err)
		}
	}

	if _, err := f.svc.RecordStats(ctx, memory.MatchIDIndAus, []scoring.PlayerMatchStats{
		{PlayerID: "kohli", Runs: 100},
		{PlayerID: "bumrah", Wickets: 3, Maidens: 1},
	}); err != nil {
		t.Fatalf("record stats: %v", err)
	}

	live, err := f.svc.TeamPoints(ctx, "u1", memory.MatchIDIndAus)
	if err != nil {
		t.Fatalf("live points: %v", err)
	}
	if live.Finalized || live.Points != 124+87 {
		t.Fatalf("unexpected live points: %+v", live)
	}

	result, err := f.svc.FinalizeMatch(ctx, memory.MatchIDIndAus)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.TeamsScored != teams || result.PlayerCount != 2 {
		t.Fatalf("unexpected finalize result: %+v", result)
	}

	m, _, _ := f.matches.GetByID(ctx, memory.MatchIDIndAus)
	if m.Status != match.StatusCompleted {
		t.Fatalf("match should be completed, got %s", m.Status)
	}

	final, err := f.svc.TeamPoints(ctx, "u7", memory.MatchIDIndAus)
	if err != nil {
		t.Fatalf("final points: %v", err)
	}
	if !final.Finalized || final.Points != 211 {
		t.Fatalf("unexpected final points: %+v", final)
	}

	players, err := f.svc.PlayerPoints(ctx, memory.MatchIDIndAus)
	if err != nil {
		t.Fatalf("player points: %v", err)
	}
	if len(players) != 2 || players[0].PlayerID != "kohli" || players[0].Points != 124 {
		t.Fatalf("unexpected player points: %+v", players)
	}
}

func TestScoringService_FinalizeKeepsStatusWhenSaveFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := scoringmock.NewTeamRepository(t)
	statsRepo := scoringmock.NewStatsRepository(t)
	svc := NewScoringService(matchRepo, memory.NewLeagueRepository(nil), teamRepo, statsRepo, &id.Sequence{}, 2, logging.NewNop())

	matchRepo.On("GetByID", mock.Anything, "m1").Return(match.Match{ID: "m1", Status: match.StatusLive}, true, nil).Once()
	statsRepo.On("ListByMatch", mock.Anything, "m1").Return([]scoring.PlayerMatchStats{{PlayerID: "p1", Runs: 10}}, nil).Once()
	teamRepo.On("ListByMatch", mock.Anything, "m1").Return([]scoring.FantasyTeam{{ID: "t1", PlayerIDs: []string{"p1"}}}, nil).Once()
	teamRepo.On("SavePoints", mock.Anything, "t1", 10).Return(errors.New("deadlock detected")).Once()

	if _, err := svc.FinalizeMatch(ctx, "m1"); err == nil {
		t.Fatalf("expected finalize error")
	}
	matchRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
