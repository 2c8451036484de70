package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type leagueFeeLedger interface {
	Debit(ctx context.Context, userID string, amount decimal.Decimal, description string) (wallet.Transaction, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal, description string) (wallet.Transaction, error)
}

type LeagueService struct {
	leagueRepo league.Repository
	ledger     leagueFeeLedger
	logger     *logging.Logger
	now        func() time.Time
}

// JoinResult carries the entry-fee debit; Fee is nil for free leagues.
type JoinResult struct {
	League league.League
	Fee    *wallet.Transaction
}

func NewLeagueService(leagueRepo league.Repository, ledger leagueFeeLedger, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo: leagueRepo,
		ledger:     ledger,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context, filter, sortKey string) ([]league.League, error) {
	q, err := league.ParseListQuery(filter, sortKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	leagues, err := s.leagueRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return l, nil
}

// JoinLeague debits the entry fee before inserting the participant. A failed
// insert is compensated with a refund credit.
func (s *LeagueService) JoinLeague(ctx context.Context, userID, leagueID string) (JoinResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinLeague",
		attribute.String("user_id", userID),
		attribute.String("league_id", leagueID),
	)
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return JoinResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	l, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return JoinResult{}, err
	}

	joined, err := s.leagueRepo.IsParticipant(ctx, l.ID, userID)
	if err != nil {
		return JoinResult{}, fmt.Errorf("check league participant: %w", err)
	}
	if joined {
		return JoinResult{}, fmt.Errorf("%w: already joined league %s", ErrConflict, l.ID)
	}
	if l.IsFull() {
		return JoinResult{}, fmt.Errorf("%w: league=%s max_teams=%d", league.ErrLeagueFull, l.ID, l.MaxTeams)
	}

	var fee *wallet.Transaction
	if !l.IsFree() {
		tx, err := s.ledger.Debit(ctx, userID, l.EntryFee, "Entry fee for league "+l.Name)
		if err != nil {
			return JoinResult{}, fmt.Errorf("debit entry fee: %w", err)
		}
		fee = &tx
	}

	if err := s.leagueRepo.AddParticipant(ctx, l.ID, userID, s.now().UTC()); err != nil {
		if fee != nil {
			s.refund(ctx, userID, l)
		}
		switch {
		case errors.Is(err, league.ErrAlreadyJoined):
			return JoinResult{}, fmt.Errorf("%w: already joined league %s", ErrConflict, l.ID)
		case errors.Is(err, league.ErrLeagueFull):
			return JoinResult{}, fmt.Errorf("join league %s: %w", l.ID, err)
		default:
			return JoinResult{}, fmt.Errorf("add league participant: %w", err)
		}
	}

	l.TeamsCount++
	return JoinResult{League: l, Fee: fee}, nil
}

func (s *LeagueService) refund(ctx context.Context, userID string, l league.League) {
	if _, err := s.ledger.Credit(ctx, userID, l.EntryFee, "Refund for league "+l.Name); err != nil {
		s.logger.ErrorContext(ctx, "refund entry fee failed",
			"user_id", userID,
			"league_id", l.ID,
			"amount", l.EntryFee.String(),
			"error", err,
		)
	}
}
