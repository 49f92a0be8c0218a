package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
	"github.com/streamvault/streamvault/internal/repository"
	"github.com/streamvault/streamvault/internal/token"
	"golang.org/x/crypto/argon2"
)

var (
	ErrEmailTaken   = errors.New("email already taken")
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidPlan  = errors.New("invalid plan")
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// Register creates an account with derived defaults. It does not log the
// user in; the caller must call Login separately.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Profile: domain.Profile{
			Name:      emailLocalPart(email),
			AvatarURL: domain.DefaultAvatarURL,
		},
		Plan:      domain.PlanBasic,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCreds
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCreds
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &LoginResponse{Token: tok, User: user.Public()}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, email string) (*domain.PublicUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	view := user.Public()
	return &view, nil
}

// UpdateProfile applies only the supplied fields. An email change that
// collides with another account fails with ErrEmailTaken and leaves the
// record untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) (*domain.PublicUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Email != nil {
		newEmail := normalizeEmail(*input.Email)
		if newEmail != "" && newEmail != user.Email {
			existing, err := s.userRepo.GetByEmail(ctx, newEmail)
			if err != nil {
				return nil, fmt.Errorf("checking email: %w", err)
			}
			if existing != nil {
				return nil, ErrEmailTaken
			}
			user.Email = newEmail
		}
	}
	if input.Name != nil && *input.Name != "" {
		user.Profile.Name = *input.Name
	}
	if input.Avatar != nil && *input.Avatar != "" {
		user.Profile.AvatarURL = *input.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}

	view := user.Public()
	return &view, nil
}

func (s *AuthService) UpdatePlan(ctx context.Context, email string, plan domain.Plan) (domain.Plan, error) {
	if !plan.Valid() {
		return "", ErrInvalidPlan
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	user.Plan = plan
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("updating user: %w", err)
	}

	return user.Plan, nil
}

// Logout revokes the token when a revocation store is configured. Without
// one, tokens stay valid until natural expiry.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	return s.tokens.Revoke(ctx, tokenStr)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyPassword(password, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
