package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
)

// ErrEmailExists is returned when a create or update would violate email
// uniqueness.
var ErrEmailExists = errors.New("email already exists")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByEmail matches case-insensitively. Returns (nil, nil) when no
	// account exists for the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListRecent returns up to limit notifications, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Notification, error)
}
