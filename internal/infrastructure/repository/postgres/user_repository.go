package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy11/internal/domain/user"
)

const userColumns = "id, name, email, mobile, password_hash, created_at, updated_at"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	const query = `
INSERT INTO users (id, name, email, mobile, password_hash, created_at, updated_at)
VALUES (:id, :name, :email, :mobile, :password_hash, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, toUserRow(u)); err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("%w: %s", user.ErrDuplicate, constraint)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	const query = `
UPDATE users
SET name = :name,
    email = :email,
    mobile = :mobile,
    updated_at = :updated_at
WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, toUserRow(u))
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok {
			return fmt.Errorf("%w: %s", user.ErrDuplicate, constraint)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update user: no row for id=%s", u.ID)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getOne(ctx, "id", userID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, "email", user.NormalizeEmail(email))
}

func (r *UserRepository) GetByMobile(ctx context.Context, mobile string) (user.User, bool, error) {
	return r.getOne(ctx, "mobile", mobile)
}

// getOne looks up by a fixed column name; column is never user input.
func (r *UserRepository) getOne(ctx context.Context, column, value string) (user.User, bool, error) {
	query := "SELECT " + userColumns + " FROM users WHERE " + column + " = $1"

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, value); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by %s: %w", column, err)
	}
	return fromUserRow(row), true, nil
}

func toUserRow(u user.User) userTableModel {
	return userTableModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Mobile:       u.Mobile,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromUserRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Mobile:       row.Mobile,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
