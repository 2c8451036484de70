package events

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/nats-io/nats.go"
	"github.com/riskibarqy/fantasy11/internal/domain/wallet"
	"github.com/shopspring/decimal"
)

const SubjectTransactionCommitted = "wallet.transaction.committed"

// Conn is the subset of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

type TransactionCommittedEvent struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Kind          string    `json:"kind"`
	Amount        string    `json:"amount"`
	Balance       string    `json:"balance"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// LedgerPublisher fans committed wallet entries out on NATS.
type LedgerPublisher struct {
	conn    Conn
	subject string
}

func NewLedgerPublisher(conn Conn, subjectPrefix string) *LedgerPublisher {
	subject := SubjectTransactionCommitted
	if prefix := strings.Trim(strings.TrimSpace(subjectPrefix), "."); prefix != "" {
		subject = prefix + "." + subject
	}
	return &LedgerPublisher{conn: conn, subject: subject}
}

func (p *LedgerPublisher) Subject() string {
	return p.subject
}

func (p *LedgerPublisher) TransactionCommitted(_ context.Context, tx wallet.Transaction, balance decimal.Decimal) error {
	payload, err := sonic.Marshal(TransactionCommittedEvent{
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Kind:          string(tx.Kind),
		Amount:        tx.Amount.StringFixed(2),
		Balance:       balance.StringFixed(2),
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt,
	})
	if err != nil {
		return crerr.Wrap(err, "encode transaction event")
	}

	if err := p.conn.Publish(p.subject, payload); err != nil {
		return crerr.Wrapf(err, "publish %s", p.subject)
	}
	return nil
}

// Connect dials NATS with unlimited reconnects.
func Connect(url, clientName string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "connect nats %s", url)
	}
	return conn, nil
}
