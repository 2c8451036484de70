package wallet

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestApply(t *testing.T) {
	balance := decimal.NewFromInt(100)

	next, err := Apply(balance, Transaction{Kind: KindCredit, Amount: decimal.NewFromInt(25)})
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if !next.Equal(decimal.NewFromInt(125)) {
		t.Fatalf("unexpected balance after credit: %s", next)
	}

	next, err = Apply(balance, Transaction{Kind: KindDebit, Amount: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("exact debit: %v", err)
	}
	if !next.IsZero() {
		t.Fatalf("expected zero balance, got %s", next)
	}

	next, err = Apply(balance, Transaction{Kind: KindDebit, Amount: decimal.NewFromInt(150)})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if !next.Equal(balance) {
		t.Fatalf("balance must be unchanged on failure, got %s", next)
	}
}

func TestTransactionValidate(t *testing.T) {
	tx := Transaction{ID: "t1", UserID: "u1", Kind: KindDebit, Amount: decimal.RequireFromString("0.01")}
	if err := tx.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.SignedAmount().Equal(decimal.RequireFromString("-0.01")) {
		t.Fatalf("unexpected signed amount: %s", tx.SignedAmount())
	}

	tx.Amount = decimal.Zero
	if err := tx.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	tx.Amount = decimal.RequireFromString("0.004")
	if err := tx.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for sub-cent amount, got %v", err)
	}

	tx.Amount = decimal.NewFromInt(1)
	tx.Kind = "refund"
	if err := tx.Validate(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestValidateAmount(t *testing.T) {
	valid := []string{"0.01", "49", "49.5", "999999999999.99"}
	for _, raw := range valid {
		if err := ValidateAmount(decimal.RequireFromString(raw)); err != nil {
			t.Fatalf("%s: unexpected error: %v", raw, err)
		}
	}

	invalid := []string{"0", "-1", "0.004", "10.001", "1000000000000", "1000000000000.5"}
	for _, raw := range invalid {
		if err := ValidateAmount(decimal.RequireFromString(raw)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%s: expected ErrInvalidAmount, got %v", raw, err)
		}
	}
}

func TestApply_RejectsBalanceOverflow(t *testing.T) {
	balance := decimal.RequireFromString("999999999999.00")

	next, err := Apply(balance, Transaction{Kind: KindCredit, Amount: decimal.NewFromInt(1)})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if !next.Equal(balance) {
		t.Fatalf("balance must be unchanged on failure, got %s", next)
	}

	next, err = Apply(balance, Transaction{Kind: KindCredit, Amount: decimal.RequireFromString("0.99")})
	if err != nil {
		t.Fatalf("credit up to the limit: %v", err)
	}
	if !next.Equal(decimal.RequireFromString("999999999999.99")) {
		t.Fatalf("unexpected balance: %s", next)
	}
}
