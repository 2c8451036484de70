package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy11/internal/domain/user"
)

type UserRepository struct {
	mu       sync.RWMutex
	items    map[string]user.User
	byEmail  map[string]string
	byMobile map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		items:    make(map[string]user.User),
		byEmail:  make(map[string]string),
		byMobile: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[u.ID]; ok {
		return fmt.Errorf("%w: id=%s", user.ErrDuplicate, u.ID)
	}
	if err := r.checkUniqueLocked(u); err != nil {
		return err
	}

	r.items[u.ID] = u
	r.byEmail[user.NormalizeEmail(u.Email)] = u.ID
	r.byMobile[u.Mobile] = u.ID
	return nil
}

func (r *UserRepository) Update(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[u.ID]
	if !ok {
		return fmt.Errorf("user not found: %s", u.ID)
	}
	if err := r.checkUniqueLocked(u); err != nil {
		return err
	}

	delete(r.byEmail, user.NormalizeEmail(prev.Email))
	delete(r.byMobile, prev.Mobile)
	r.items[u.ID] = u
	r.byEmail[user.NormalizeEmail(u.Email)] = u.ID
	r.byMobile[u.Mobile] = u.ID
	return nil
}

func (r *UserRepository) checkUniqueLocked(u user.User) error {
	if owner, ok := r.byEmail[user.NormalizeEmail(u.Email)]; ok && owner != u.ID {
		return fmt.Errorf("%w: email", user.ErrDuplicate)
	}
	if owner, ok := r.byMobile[u.Mobile]; ok && owner != u.ID {
		return fmt.Errorf("%w: mobile", user.ErrDuplicate)
	}
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	return u, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *UserRepository) GetByMobile(_ context.Context, mobile string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byMobile[mobile]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}
