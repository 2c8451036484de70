package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy11/internal/domain/user"
	"github.com/riskibarqy/fantasy11/internal/platform/id"
	"github.com/riskibarqy/fantasy11/internal/platform/logging"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}

type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(p user.Principal) (AccessToken, error)
	VerifyAccessToken(ctx context.Context, token string) (user.Principal, error)
}

type accountOpener interface {
	OpenAccount(ctx context.Context, userID string) error
}

type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// LoginInput identifies the user by Email when set, otherwise by Mobile.
type LoginInput struct {
	Email    string
	Mobile   string
	Password string
}

type AuthResult struct {
	Token AccessToken
	User  user.User
}

type AuthService struct {
	userRepo user.Repository
	wallets  accountOpener
	hasher   PasswordHasher
	tokens   TokenIssuer
	idGen    id.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewAuthService(
	userRepo user.Repository,
	wallets accountOpener,
	hasher PasswordHasher,
	tokens TokenIssuer,
	idGen id.Generator,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		userRepo: userRepo,
		wallets:  wallets,
		hasher:   hasher,
		tokens:   tokens,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	u := user.User{
		Name:   strings.TrimSpace(input.Name),
		Email:  user.NormalizeEmail(input.Email),
		Mobile: strings.TrimSpace(input.Mobile),
	}
	if err := u.Validate(); err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := user.ValidatePassword(input.Password); err != nil {
		return AuthResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureUnique(ctx, u); err != nil {
		return AuthResult{}, err
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u.ID = userID
	u.PasswordHash = hash
	u.CreatedAt = now
	u.UpdatedAt = now

	// The wallet is opened first; an orphan empty account is harmless if the user insert fails.
	if err := s.wallets.OpenAccount(ctx, u.ID); err != nil {
		return AuthResult{}, err
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			return AuthResult{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.Principal{UserID: u.ID, Email: u.Email})
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID)
	return AuthResult{Token: token, User: u}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if input.Password == "" {
		return AuthResult{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	var (
		u      user.User
		exists bool
		err    error
	)
	switch {
	case strings.TrimSpace(input.Email) != "":
		u, exists, err = s.userRepo.GetByEmail(ctx, user.NormalizeEmail(input.Email))
	case strings.TrimSpace(input.Mobile) != "":
		u, exists, err = s.userRepo.GetByMobile(ctx, strings.TrimSpace(input.Mobile))
	default:
		return AuthResult{}, fmt.Errorf("%w: email or mobile is required", ErrInvalidInput)
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if !exists {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	ok, err := s.hasher.Verify(u.PasswordHash, input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.Principal{UserID: u.ID, Email: u.Email})
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}
	return AuthResult{Token: token, User: u}, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", ErrUnauthorized)
	}
	return s.tokens.VerifyAccessToken(ctx, token)
}

func (s *AuthService) ensureUnique(ctx context.Context, u user.User) error {
	if _, exists, err := s.userRepo.GetByEmail(ctx, u.Email); err != nil {
		return fmt.Errorf("lookup user by email: %w", err)
	} else if exists {
		return fmt.Errorf("%w: user already exists", ErrConflict)
	}
	if _, exists, err := s.userRepo.GetByMobile(ctx, u.Mobile); err != nil {
		return fmt.Errorf("lookup user by mobile: %w", err)
	} else if exists {
		return fmt.Errorf("%w: user already exists", ErrConflict)
	}
	return nil
}
