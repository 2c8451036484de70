package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/user"
)

// UpdateProfileInput applies only the non-nil fields.
type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Mobile *string
}

type UserService struct {
	userRepo user.Repository
	now      func() time.Time
}

func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{userRepo: userRepo, now: time.Now}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (user.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if input.Name != nil {
		u.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		u.Email = user.NormalizeEmail(*input.Email)
	}
	if input.Mobile != nil {
		u.Mobile = strings.TrimSpace(*input.Mobile)
	}
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	u.UpdatedAt = s.now().UTC()

	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return user.User{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
