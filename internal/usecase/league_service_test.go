package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/league"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/fantasy11/internal/mocks/domain/league"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListLeagues(t *testing.T) {
	svc := NewLeagueService(memory.NewLeagueRepository(memory.SeedLeagues()), nil, logging.NewNop())

	got, err := svc.ListLeagues(context.Background(), "paid", "entry")
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != 2 || got[0].ID != memory.LeagueIDMega {
		t.Fatalf("unexpected leagues: %+v", got)
	}

	if _, err := svc.ListLeagues(context.Background(), "vip", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeagueService_JoinPaidLeagueDebitsEntryFee(t *testing.T) {
	ctx := context.Background()
	wallets, _ := newTestWallet(t, "u1")
	_, _ = wallets.AddMoney(ctx, "u1", decimal.NewFromInt(200))
	svc := NewLeagueService(memory.NewLeagueRepository(memory.SeedLeagues()), wallets, logging.NewNop())

	result, err := svc.JoinLeague(ctx, "u1", memory.LeagueIDMega)
	if err != nil {
		t.Fatalf("join league: %v", err)
	}
	if result.Fee == nil || !result.Fee.Amount.Equal(decimal.NewFromInt(49)) {
		t.Fatalf("expected a 49 debit, got %+v", result.Fee)
	}
	if result.Fee.Description != "Entry fee for league Mega Contest" {
		t.Fatalf("unexpected description: %q", result.Fee.Description)
	}

	balance, _ := wallets.Balance(ctx, "u1")
	if !balance.Equal(decimal.NewFromInt(151)) {
		t.Fatalf("unexpected balance: %s", balance)
	}

	_, err = svc.JoinLeague(ctx, "u1", memory.LeagueIDMega)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second join, got %v", err)
	}
	txs, _ := wallets.ListTransactions(ctx, "u1")
	if len(txs) != 2 {
		t.Fatalf("second join must not debit again, got %d transactions", len(txs))
	}
}

func TestLeagueService_JoinFreeLeagueRecordsNoTransaction(t *testing.T) {
	ctx := context.Background()
	wallets, _ := newTestWallet(t, "u1")
	svc := NewLeagueService(memory.NewLeagueRepository(memory.SeedLeagues()), wallets, logging.NewNop())

	result, err := svc.JoinLeague(ctx, "u1", memory.LeagueIDPractice)
	if err != nil {
		t.Fatalf("join free league: %v", err)
	}
	if result.Fee != nil {
		t.Fatalf("free league must not charge, got %+v", result.Fee)
	}
	txs, _ := wallets.ListTransactions(ctx, "u1")
	if len(txs) != 0 {
		t.Fatalf("expected no transactions, got %d", len(txs))
	}
}

func TestLeagueService_JoinWithInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	wallets, _ := newTestWallet(t, "u1")
	_, _ = wallets.AddMoney(ctx, "u1", decimal.NewFromInt(20))
	repo := memory.NewLeagueRepository(memory.SeedLeagues())
	svc := NewLeagueService(repo, wallets, logging.NewNop())

	_, err := svc.JoinLeague(ctx, "u1", memory.LeagueIDHeadHead)
	if !errors.Is(err, wallet.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	joined, _ := repo.IsParticipant(ctx, memory.LeagueIDHeadHead, "u1")
	if joined {
		t.Fatalf("user must not be added without paying")
	}
}

func TestLeagueService_JoinUnknownLeague(t *testing.T) {
	svc := NewLeagueService(memory.NewLeagueRepository(nil), nil, logging.NewNop())
	if _, err := svc.JoinLeague(context.Background(), "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_JoinFullLeague(t *testing.T) {
	ctx := context.Background()
	repo := leaguemock.NewRepository(t)
	svc := NewLeagueService(repo, nil, logging.NewNop())
	full := league.League{ID: "l1", Name: "Full", EntryFee: decimal.NewFromInt(10), MaxTeams: 2, TeamsCount: 2}

	repo.On("GetByID", mock.Anything, "l1").Return(full, true, nil).Once()
	repo.On("IsParticipant", mock.Anything, "l1", "u1").Return(false, nil).Once()

	if _, err := svc.JoinLeague(ctx, "u1", "l1"); !errors.Is(err, league.ErrLeagueFull) {
		t.Fatalf("expected ErrLeagueFull, got %v", err)
	}
}

func TestLeagueService_RefundsWhenParticipantInsertFails(t *testing.T) {
	ctx := context.Background()
	wallets, _ := newTestWallet(t, "u1")
	_, _ = wallets.AddMoney(ctx, "u1", decimal.NewFromInt(100))

	repo := leaguemock.NewRepository(t)
	svc := NewLeagueService(repo, wallets, logging.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC) }
	h2h := league.League{ID: "l2", Name: "Head to Head", EntryFee: decimal.NewFromInt(100), MaxTeams: 2}

	repo.On("GetByID", mock.Anything, "l2").Return(h2h, true, nil).Once()
	repo.On("IsParticipant", mock.Anything, "l2", "u1").Return(false, nil).Once()
	repo.On("AddParticipant", mock.Anything, "l2", "u1", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)).
		Return(league.ErrLeagueFull).
		Once()

	if _, err := svc.JoinLeague(ctx, "u1", "l2"); !errors.Is(err, league.ErrLeagueFull) {
		t.Fatalf("expected ErrLeagueFull, got %v", err)
	}

	balance, _ := wallets.Balance(ctx, "u1")
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("entry fee must be refunded, balance=%s", balance)
	}
	txs, _ := wallets.ListTransactions(ctx, "u1")
	if len(txs) != 3 || txs[2].Description != "Refund for league Head to Head" || txs[2].Kind != wallet.KindCredit {
		t.Fatalf("expected refund credit as last entry, got %+v", txs)
	}
}
