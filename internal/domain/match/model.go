package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

var ErrInvalidStatus = errors.New("invalid match status")

// Match is a real-world fixture users build fantasy teams for.
type Match struct {
	ID        string
	Team1     string
	Team2     string
	MatchDate time.Time
	Status    Status
	Score     string
	CreatedAt time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Team1 == "" || m.Team2 == "" {
		return fmt.Errorf("match teams are required")
	}
	if _, err := ParseStatus(string(m.Status)); err != nil {
		return err
	}
	return nil
}

// ParseStatus parses a stored status. Use ParseStatusFilter for query input.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// ParseStatusFilter maps "" and "all" to the empty status, meaning no filter.
func ParseStatusFilter(raw string) (Status, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" || trimmed == "all" {
		return "", nil
	}
	return ParseStatus(trimmed)
}
