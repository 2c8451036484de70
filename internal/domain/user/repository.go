package user

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create/Update when email or mobile is taken.
var ErrDuplicate = errors.New("user already exists")

type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByMobile(ctx context.Context, mobile string) (User, bool, error)
}
