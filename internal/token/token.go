// Package token issues and verifies signed session tokens. Verification is
// stateless: a token is valid if its signature checks out and it has not
// expired. An optional Blacklist adds revocation on top.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
)

// Validity is the fixed expiry horizon for issued tokens.
const Validity = 24 * time.Hour

var (
	ErrMissing = errors.New("token missing")
	ErrInvalid = errors.New("token invalid")
	ErrExpired = errors.New("token expired")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is what a verified token proves.
type Identity struct {
	Email  string
	UserID uuid.UUID
}

// Blacklist records revoked token IDs until their natural expiry.
type Blacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Manager struct {
	secret    []byte
	blacklist Blacklist // nil: purely stateless verification
}

func NewManager(secret string, blacklist Blacklist) *Manager {
	return &Manager{
		secret:    []byte(secret),
		blacklist: blacklist,
	}
}

func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, tokenStr string) (*Identity, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalid
	}

	if m.blacklist != nil && claims.ID != "" {
		revoked, err := m.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalid
		}
	}

	return &Identity{Email: claims.Email, UserID: userID}, nil
}

// Revoke invalidates a token until its natural expiry. A no-op when no
// blacklist is configured or the token is already expired.
func (m *Manager) Revoke(ctx context.Context, tokenStr string) error {
	if m.blacklist == nil {
		return nil
	}

	claims, err := m.parse(tokenStr)
	if err != nil {
		return err
	}
	if claims.ID == "" {
		return ErrInvalid
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return m.blacklist.Revoke(ctx, claims.ID, ttl)
}

func (m *Manager) parse(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMissing
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
