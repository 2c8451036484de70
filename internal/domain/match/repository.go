package match

import "context"

type Repository interface {
	// List returns matches ordered by match date; an empty status returns all.
	List(ctx context.Context, status Status) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	UpdateStatus(ctx context.Context, matchID string, status Status) error
}
