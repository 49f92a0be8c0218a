package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "a@x.com",
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", nil)
	user := testUser()

	tok, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	identity, err := m.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if identity.Email != user.Email {
		t.Fatalf("email mismatch: got %q want %q", identity.Email, user.Email)
	}
	if identity.UserID != user.ID {
		t.Fatalf("user id mismatch: got %s want %s", identity.UserID, user.ID)
	}
}

func TestVerify_Missing(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", nil)

	_, err := m.Verify(context.Background(), "")
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	now := time.Now()
	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * Validity)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-Validity)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	m := NewManager(secret, nil)
	_, err = m.Verify(context.Background(), tok)
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", nil).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewManager("wrong-secret", nil).Verify(context.Background(), tok)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", nil)
	tok, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip the last signature byte.
	tampered := tok[:len(tok)-1]
	if tok[len(tok)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = m.Verify(context.Background(), tampered)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", nil)

	_, err := m.Verify(context.Background(), "not.a.jwt")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	if f.revoked == nil {
		f.revoked = make(map[string]bool)
	}
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func TestRevoke_InvalidatesToken(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", &fakeBlacklist{})
	tok, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Verify(context.Background(), tok); err != nil {
		t.Fatalf("Verify before revoke: %v", err)
	}

	if err := m.Revoke(context.Background(), tok); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}

	_, err = m.Verify(context.Background(), tok)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid after revoke, got %v", err)
	}
}

func TestRevoke_NoBlacklistIsNoop(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", nil)
	tok, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if err := m.Revoke(context.Background(), tok); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	if _, err := m.Verify(context.Background(), tok); err != nil {
		t.Fatalf("token should stay valid without a blacklist: %v", err)
	}
}
