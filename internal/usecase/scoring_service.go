package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/match"
	"github.com/riskibarqy/fantasy11/internal/domain/scoring"
	"github.com/riskibarqy/fantasy11/internal/platform/id"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultScoringWorkers = 8

type SubmitTeamInput struct {
	UserID    string
	MatchID   string
	LeagueID  string
	PlayerIDs []string
}

type FinalizeResult struct {
	MatchID     string
	TeamsScored int
	PlayerCount int
}

type TeamPointsResult struct {
	Team      scoring.FantasyTeam
	Points    int
	Finalized bool
}

// FinalizeScheduler queues a deferred finalize call for a match.
type FinalizeScheduler interface {
	ScheduleFinalize(ctx context.Context, matchID string) error
}

type ScoringService struct {
	matchRepo  match.Repository
	leagueRepo league.Repository
	teamRepo   scoring.TeamRepository
	statsRepo  scoring.StatsRepository
	table      scoring.Table
	idGen      id.Generator
	workers    int
	logger     *logging.Logger
	now        func() time.Time
	scheduler  FinalizeScheduler
}

func NewScoringService(
	matchRepo match.Repository,
	leagueRepo league.Repository,
	teamRepo scoring.TeamRepository,
	statsRepo scoring.StatsRepository,
	idGen id.Generator,
	workers int,
	logger *logging.Logger,
) *ScoringService {
	if workers <= 0 {
		workers = defaultScoringWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		matchRepo:  matchRepo,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		statsRepo:  statsRepo,
		table:      scoring.DefaultTable,
		idGen:      idGen,
		workers:    workers,
		logger:     logger,
		now:        time.Now,
	}
}

// SetFinalizeScheduler enables automatic finalization once stats land.
func (s *ScoringService) SetFinalizeScheduler(scheduler FinalizeScheduler) {
	s.scheduler = scheduler
}

// SubmitTeam creates or replaces the user's team for an upcoming match.
func (s *ScoringService) SubmitTeam(ctx context.Context, input SubmitTeamInput) (scoring.FantasyTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SubmitTeam", attribute.String("match_id", input.MatchID))
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.UserID == "" || input.MatchID == "" || input.LeagueID == "" {
		return scoring.FantasyTeam{}, fmt.Errorf("%w: user id, match id and league id are required", ErrInvalidInput)
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return scoring.FantasyTeam{}, err
	}
	if m.Status != match.StatusUpcoming {
		return scoring.FantasyTeam{}, fmt.Errorf("%w: match %s is %s, teams can only be submitted before start", ErrInvalidInput, m.ID, m.Status)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return scoring.FantasyTeam{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return scoring.FantasyTeam{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}
	if l.MatchID != m.ID {
		return scoring.FantasyTeam{}, fmt.Errorf("%w: league %s does not belong to match %s", ErrInvalidInput, l.ID, m.ID)
	}
	joined, err := s.leagueRepo.IsParticipant(ctx, l.ID, input.UserID)
	if err != nil {
		return scoring.FantasyTeam{}, fmt.Errorf("check league participant: %w", err)
	}
	if !joined {
		return scoring.FantasyTeam{}, fmt.Errorf("%w: join league %s before submitting a team", ErrInvalidInput, l.ID)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return scoring.FantasyTeam{}, fmt.Errorf("generate team id: %w", err)
	}
	team := scoring.FantasyTeam{
		ID:        teamID,
		UserID:    input.UserID,
		MatchID:   m.ID,
		LeagueID:  l.ID,
		PlayerIDs: trimAll(input.PlayerIDs),
		UpdatedAt: s.now().UTC(),
	}
	if err := team.Validate(); err != nil {
		return scoring.FantasyTeam{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Upsert(ctx, team); err != nil {
		return scoring.FantasyTeam{}, fmt.Errorf("upsert fantasy team: %w", err)
	}

	stored, exists, err := s.teamRepo.GetByUserAndMatch(ctx, team.UserID, team.MatchID)
	if err != nil {
		return scoring.FantasyTeam{}, fmt.Errorf("reload fantasy team: %w", err)
	}
	if !exists {
		return team, nil
	}
	return stored, nil
}

// RecordStats stores one batch of player stats for a match that is not yet finalized.
func (s *ScoringService) RecordStats(ctx context.Context, matchID string, stats []scoring.PlayerMatchStats) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecordStats", attribute.String("match_id", matchID))
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return 0, err
	}
	if m.Status == match.StatusCompleted {
		return 0, fmt.Errorf("%w: match %s is already finalized", ErrConflict, m.ID)
	}
	if len(stats) == 0 {
		return 0, fmt.Errorf("%w: stats are required", ErrInvalidInput)
	}

	recordedAt := s.now().UTC()
	seen := make(map[string]struct{}, len(stats))
	batch := make([]scoring.PlayerMatchStats, 0, len(stats))
	for _, item := range stats {
		item.PlayerID = strings.TrimSpace(item.PlayerID)
		if item.PlayerID == "" {
			return 0, fmt.Errorf("%w: player id is required", ErrInvalidInput)
		}
		if _, dup := seen[item.PlayerID]; dup {
			return 0, fmt.Errorf("%w: duplicate stats for player %s", ErrInvalidInput, item.PlayerID)
		}
		seen[item.PlayerID] = struct{}{}
		if err := item.Validate(); err != nil {
			return 0, fmt.Errorf("player %s: %w", item.PlayerID, err)
		}
		item.MatchID = m.ID
		item.RecordedAt = recordedAt
		batch = append(batch, item)
	}

	if err := s.statsRepo.RecordMany(ctx, m.ID, batch); err != nil {
		if errors.Is(err, scoring.ErrStatsAlreadyRecorded) {
			return 0, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return 0, fmt.Errorf("record player stats: %w", err)
	}

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleFinalize(ctx, m.ID); err != nil {
			s.logger.WarnContext(ctx, "schedule match finalize failed", "match_id", m.ID, "error", err)
		}
	}
	return len(batch), nil
}

// FinalizeMatch scores every team of the match on a worker pool, persists the
// totals and then marks the match completed. Any persistence failure leaves
// the match status untouched so the call can be retried.
func (s *ScoringService) FinalizeMatch(ctx context.Context, matchID string) (FinalizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.FinalizeMatch", attribute.String("match_id", matchID))
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return FinalizeResult{}, err
	}

	stats, err := s.statsRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("list match stats: %w", err)
	}
	byPlayer := make(map[string]scoring.PlayerMatchStats, len(stats))
	for _, item := range stats {
		byPlayer[item.PlayerID] = item
	}

	teams, err := s.teamRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("list match teams: %w", err)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		scored   atomic.Int32
		errMu    sync.Mutex
		firstErr error
	)
	for _, team := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			points := s.table.TeamPoints(teamStats(team, byPlayer))
			if err := s.teamRepo.SavePoints(ctx, team.ID, points); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("save points team=%s: %w", team.ID, err)
				}
				errMu.Unlock()
				return
			}
			scored.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return FinalizeResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return FinalizeResult{}, firstErr
	}

	if m.Status != match.StatusCompleted {
		if err := s.matchRepo.UpdateStatus(ctx, m.ID, match.StatusCompleted); err != nil {
			return FinalizeResult{}, fmt.Errorf("mark match completed: %w", err)
		}
	}

	result := FinalizeResult{
		MatchID:     m.ID,
		TeamsScored: int(scored.Load()),
		PlayerCount: len(stats),
	}
	s.logger.InfoContext(ctx, "match finalized",
		"match_id", result.MatchID,
		"teams_scored", result.TeamsScored,
		"players", result.PlayerCount,
	)
	return result, nil
}

// PlayerPoints lists recorded players of a match, highest score first.
func (s *ScoringService) PlayerPoints(ctx context.Context, matchID string) ([]scoring.PlayerPoints, error) {
	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list match stats: %w", err)
	}

	out := make([]scoring.PlayerPoints, 0, len(stats))
	for _, item := range stats {
		points, err := s.table.Points(item)
		if err != nil {
			points = 0
		}
		out = append(out, scoring.PlayerPoints{PlayerID: item.PlayerID, Points: points})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

// TeamPoints returns the stored total once finalized, otherwise a live total
// from the stats recorded so far.
func (s *ScoringService) TeamPoints(ctx context.Context, userID, matchID string) (TeamPointsResult, error) {
	userID = strings.TrimSpace(userID)
	matchID = strings.TrimSpace(matchID)
	if userID == "" || matchID == "" {
		return TeamPointsResult{}, fmt.Errorf("%w: user id and match id are required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByUserAndMatch(ctx, userID, matchID)
	if err != nil {
		return TeamPointsResult{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !exists {
		return TeamPointsResult{}, fmt.Errorf("%w: no team for match %s", ErrNotFound, matchID)
	}
	if team.Points != nil {
		return TeamPointsResult{Team: team, Points: *team.Points, Finalized: true}, nil
	}

	stats, err := s.statsRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return TeamPointsResult{}, fmt.Errorf("list match stats: %w", err)
	}
	byPlayer := make(map[string]scoring.PlayerMatchStats, len(stats))
	for _, item := range stats {
		byPlayer[item.PlayerID] = item
	}
	return TeamPointsResult{Team: team, Points: s.table.TeamPoints(teamStats(team, byPlayer))}, nil
}

func (s *ScoringService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
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

// teamStats maps picks to recorded stats; players without a record score zero.
func teamStats(team scoring.FantasyTeam, byPlayer map[string]scoring.PlayerMatchStats) []scoring.PlayerMatchStats {
	out := make([]scoring.PlayerMatchStats, 0, len(team.PlayerIDs))
	for _, playerID := range team.PlayerIDs {
		out = append(out, byPlayer[playerID])
	}
	return out
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
