package wallet

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the ledger's data-access collaborator. CommitEntry must check and
// apply the balance change together with the transaction insert atomically per account.
type Store interface {
	OpenAccount(ctx context.Context, userID string) error
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	CommitEntry(ctx context.Context, tx Transaction) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, userID string) ([]Transaction, error)
}

// EventPublisher receives committed ledger entries.
type EventPublisher interface {
	TransactionCommitted(ctx context.Context, tx Transaction, balance decimal.Decimal) error
}
