package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/riskibarqy/fantasy11/internal/platform/id"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

const AddMoneyDescription = "Money added to wallet"

type noopLedgerEvents struct{}

func (noopLedgerEvents) TransactionCommitted(context.Context, wallet.Transaction, decimal.Decimal) error {
	return nil
}

// WalletService owns every balance mutation. Each call commits exactly one
// transaction together with its balance change, or nothing.
type WalletService struct {
	store  wallet.Store
	idGen  id.Generator
	events wallet.EventPublisher
	logger *logging.Logger
	now    func() time.Time
}

func NewWalletService(store wallet.Store, idGen id.Generator, events wallet.EventPublisher, logger *logging.Logger) *WalletService {
	if events == nil {
		events = noopLedgerEvents{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WalletService{
		store:  store,
		idGen:  idGen,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

func (s *WalletService) OpenAccount(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := s.store.OpenAccount(ctx, userID); err != nil {
		return fmt.Errorf("open wallet account: %w", err)
	}
	return nil
}

func (s *WalletService) Credit(ctx context.Context, userID string, amount decimal.Decimal, description string) (wallet.Transaction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WalletService.Credit", attribute.String("user_id", userID))
	defer span.End()

	return s.commit(ctx, userID, wallet.KindCredit, amount, description)
}

func (s *WalletService) Debit(ctx context.Context, userID string, amount decimal.Decimal, description string) (wallet.Transaction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WalletService.Debit", attribute.String("user_id", userID))
	defer span.End()

	return s.commit(ctx, userID, wallet.KindDebit, amount, description)
}

func (s *WalletService) AddMoney(ctx context.Context, userID string, amount decimal.Decimal) (wallet.Transaction, error) {
	return s.Credit(ctx, userID, amount, AddMoneyDescription)
}

func (s *WalletService) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return decimal.Zero, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	balance, err := s.store.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get wallet balance: %w", err)
	}
	return balance, nil
}

// ListTransactions returns the full history oldest first.
func (s *WalletService) ListTransactions(ctx context.Context, userID string) ([]wallet.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	return txs, nil
}

func (s *WalletService) commit(ctx context.Context, userID string, kind wallet.Kind, amount decimal.Decimal, description string) (wallet.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return wallet.Transaction{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := wallet.ValidateAmount(amount); err != nil {
		return wallet.Transaction{}, err
	}

	txID, err := s.idGen.NewID()
	if err != nil {
		return wallet.Transaction{}, fmt.Errorf("generate transaction id: %w", err)
	}

	tx := wallet.Transaction{
		ID:          txID,
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now().UTC(),
	}

	balance, err := s.store.CommitEntry(ctx, tx)
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientBalance) || errors.Is(err, wallet.ErrAccountNotFound) || errors.Is(err, wallet.ErrInvalidAmount) {
			return wallet.Transaction{}, err
		}
		return wallet.Transaction{}, fmt.Errorf("commit %s entry: %w", kind, err)
	}

	if err := s.events.TransactionCommitted(ctx, tx, balance); err != nil {
		s.logger.WarnContext(ctx, "publish wallet transaction event failed",
			"transaction_id", tx.ID,
			"user_id", tx.UserID,
			"error", err,
		)
	}

	return tx, nil
}
