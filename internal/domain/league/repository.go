package league

import (
	"context"
	"time"
)

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, q ListQuery) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	IsParticipant(ctx context.Context, leagueID, userID string) (bool, error)
	// AddParticipant inserts the user and bumps TeamsCount atomically.
	// It returns ErrAlreadyJoined or ErrLeagueFull without writing.
	AddParticipant(ctx context.Context, leagueID, userID string, joinedAt time.Time) error
}
