package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("wallet account not found")
)

// Ledger money is NUMERIC(14,2): two decimal places, strictly below MaxAmount.
const Scale = 2

var MaxAmount = decimal.New(1, 12)

// ValidateAmount rejects amounts the ledger cannot store exactly.
func ValidateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return fmt.Errorf("%w: must be greater than zero, got %s", ErrInvalidAmount, amount.String())
	case !amount.Equal(amount.Truncate(Scale)):
		return fmt.Errorf("%w: at most %d decimal places, got %s", ErrInvalidAmount, Scale, amount.String())
	case amount.GreaterThanOrEqual(MaxAmount):
		return fmt.Errorf("%w: must be below %s, got %s", ErrInvalidAmount, MaxAmount.String(), amount.String())
	}
	return nil
}

type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

// Transaction is an immutable ledger entry. Amount is always positive; Kind carries the sign.
type Transaction struct {
	ID          string
	UserID      string
	Kind        Kind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("transaction user id is required")
	}
	if t.Kind != KindCredit && t.Kind != KindDebit {
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	return ValidateAmount(t.Amount)
}

// SignedAmount is the balance delta this entry applies.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

type Account struct {
	UserID    string
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

// Apply returns the balance after tx, or ErrInsufficientBalance if it would go negative.
// A credit that would push the balance out of the column range fails with ErrInvalidAmount.
func Apply(balance decimal.Decimal, tx Transaction) (decimal.Decimal, error) {
	next := balance.Add(tx.SignedAmount())
	if next.IsNegative() {
		return balance, fmt.Errorf("%w: balance=%s amount=%s", ErrInsufficientBalance, balance.StringFixed(2), tx.Amount.StringFixed(2))
	}
	if next.GreaterThanOrEqual(MaxAmount) {
		return balance, fmt.Errorf("%w: balance=%s would exceed %s", ErrInvalidAmount, next.StringFixed(2), MaxAmount.String())
	}
	return next, nil
}
