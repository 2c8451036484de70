package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/fantasy11/internal/domain/user"
	"github.com/riskibarqy/fantasy11/internal/usecase"
)

const defaultTokenTTL = 24 * time.Hour

type claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration, issuer string) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, crerr.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

func (s *TokenService) Issue(p user.Principal) (usecase.AccessToken, error) {
	if p.UserID == "" {
		return usecase.AccessToken{}, crerr.New("principal user id is required")
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: p.UserID,
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return usecase.AccessToken{}, crerr.Wrap(err, "sign access token")
	}
	return usecase.AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

func (s *TokenService) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Principal{}, fmt.Errorf("%w: token has expired", usecase.ErrUnauthorized)
		}
		return user.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
	}
	if parsed.UserID == "" {
		return user.Principal{}, fmt.Errorf("%w: token has no user_id", usecase.ErrUnauthorized)
	}

	return user.Principal{UserID: parsed.UserID, Email: parsed.Email}, nil
}
