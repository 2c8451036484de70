package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/shopspring/decimal"
)

// WalletStore serializes entries per account. The outer lock only guards the
// account map, so distinct accounts never wait on each other.
type WalletStore struct {
	mu       sync.RWMutex
	accounts map[string]*walletAccount
	seq      atomic.Int64
}

type walletAccount struct {
	mu      sync.Mutex
	balance decimal.Decimal
	entries []ledgerEntry
}

// ledgerEntry mirrors the wallet_transactions row: seq is assigned under the account lock.
type ledgerEntry struct {
	seq int64
	tx  wallet.Transaction
}

func NewWalletStore() *WalletStore {
	return &WalletStore{accounts: make(map[string]*walletAccount)}
}

func (s *WalletStore) OpenAccount(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[userID]; !ok {
		s.accounts[userID] = &walletAccount{balance: decimal.Zero}
	}
	return nil
}

func (s *WalletStore) GetBalance(_ context.Context, userID string) (decimal.Decimal, error) {
	acc, ok := s.account(userID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: user=%s", wallet.ErrAccountNotFound, userID)
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.balance, nil
}

func (s *WalletStore) CommitEntry(_ context.Context, tx wallet.Transaction) (decimal.Decimal, error) {
	acc, ok := s.account(tx.UserID)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: user=%s", wallet.ErrAccountNotFound, tx.UserID)
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	next, err := wallet.Apply(acc.balance, tx)
	if err != nil {
		return acc.balance, err
	}
	acc.balance = next
	acc.entries = append(acc.entries, ledgerEntry{seq: s.seq.Add(1), tx: tx})
	return next, nil
}

// ListTransactions orders by CreatedAt then commit sequence, the same as the postgres store.
// CreatedAt is stamped before the account lock, so it may disagree with commit order.
func (s *WalletStore) ListTransactions(_ context.Context, userID string) ([]wallet.Transaction, error) {
	acc, ok := s.account(userID)
	if !ok {
		return []wallet.Transaction{}, nil
	}

	acc.mu.Lock()
	entries := append([]ledgerEntry(nil), acc.entries...)
	acc.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].tx.CreatedAt.Equal(entries[j].tx.CreatedAt) {
			return entries[i].tx.CreatedAt.Before(entries[j].tx.CreatedAt)
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]wallet.Transaction, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.tx)
	}
	return out, nil
}

func (s *WalletStore) account(userID string) (*walletAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[userID]
	return acc, ok
}
