package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	qb "github.com/riskibarqy/fantasy11/internal/platform/querybuilder"
	"github.com/shopspring/decimal"
)

// WalletStore keeps balances in wallet_accounts and the append-only ledger in
// wallet_transactions. Each commit locks the account row for its duration.
type WalletStore struct {
	db *sqlx.DB
}

func NewWalletStore(db *sqlx.DB) *WalletStore {
	return &WalletStore{db: db}
}

func (s *WalletStore) OpenAccount(ctx context.Context, userID string) error {
	const query = `
INSERT INTO wallet_accounts (user_id, balance, updated_at)
VALUES ($1, 0, NOW())
ON CONFLICT (user_id) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("open wallet account: %w", err)
	}
	return nil
}

func (s *WalletStore) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	query, args, err := qb.Select("balance").From("wallet_accounts").Where(qb.Eq("user_id", userID)).Build()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build get balance query: %w", err)
	}

	var balance decimal.Decimal
	if err := s.db.GetContext(ctx, &balance, query, args...); err != nil {
		if isNotFound(err) {
			return decimal.Zero, fmt.Errorf("%w: user=%s", wallet.ErrAccountNotFound, userID)
		}
		return decimal.Zero, fmt.Errorf("get wallet balance: %w", err)
	}
	return balance, nil
}

func (s *WalletStore) CommitEntry(ctx context.Context, entry wallet.Transaction) (decimal.Decimal, error) {
	lockQuery, lockArgs, err := qb.Select("balance").
		From("wallet_accounts").
		Where(qb.Eq("user_id", entry.UserID)).
		ForUpdate().
		Build()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build lock account query: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("begin commit entry tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current decimal.Decimal
	if err := tx.GetContext(ctx, &current, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return decimal.Zero, fmt.Errorf("%w: user=%s", wallet.ErrAccountNotFound, entry.UserID)
		}
		return decimal.Zero, fmt.Errorf("lock wallet account: %w", err)
	}

	next, err := wallet.Apply(current, entry)
	if err != nil {
		return current, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE wallet_accounts SET balance = $1, updated_at = $2 WHERE user_id = $3`,
		next, entry.CreatedAt, entry.UserID,
	); err != nil {
		return decimal.Zero, fmt.Errorf("update wallet balance: %w", err)
	}

	const insertQuery = `
INSERT INTO wallet_transactions (id, user_id, kind, amount, description, created_at)
VALUES (:id, :user_id, :kind, :amount, :description, :created_at)`
	bound, args, err := sqlx.Named(insertQuery, walletTransactionTableModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Kind:        string(entry.Kind),
		Amount:      entry.Amount,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("bind insert transaction query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(bound), args...); err != nil {
		return decimal.Zero, fmt.Errorf("insert wallet transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("commit entry tx: %w", err)
	}
	return next, nil
}

func (s *WalletStore) ListTransactions(ctx context.Context, userID string) ([]wallet.Transaction, error) {
	query, args, err := qb.Select("id", "user_id", "kind", "amount", "description", "created_at").
		From("wallet_transactions").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at", "seq").
		Build()
	if err != nil {
		return nil, fmt.Errorf("build list transactions query: %w", err)
	}

	var rows []walletTransactionTableModel
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select wallet transactions: %w", err)
	}

	out := make([]wallet.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, wallet.Transaction{
			ID:          row.ID,
			UserID:      row.UserID,
			Kind:        wallet.Kind(row.Kind),
			Amount:      row.Amount,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
