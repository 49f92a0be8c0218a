package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
	"github.com/streamvault/streamvault/internal/repository"
)

// DefaultRecentLimit bounds PullRecent when the caller gives no limit.
const DefaultRecentLimit = 10

// Notifier pushes a freshly posted notification to live subscribers.
// Delivery is best-effort; disconnected subscribers rely on PullRecent.
type Notifier interface {
	NotifyNotification(n *domain.Notification)
}

type NotificationService struct {
	repo     repository.NotificationRepository
	notifier Notifier
}

func NewNotificationService(repo repository.NotificationRepository, notifier Notifier) *NotificationService {
	return &NotificationService{
		repo:     repo,
		notifier: notifier,
	}
}

// Post appends a notification and fans it out to connected clients.
// A nil targetUserID means broadcast.
func (s *NotificationService) Post(ctx context.Context, message, kind string, targetUserID *uuid.UUID) (*domain.Notification, error) {
	if kind == "" {
		kind = domain.KindInfo
	}

	n := &domain.Notification{
		ID:           uuid.New(),
		TargetUserID: targetUserID,
		Message:      message,
		Kind:         kind,
		IsRead:       false,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNotification(n)
	}

	return n, nil
}

// PullRecent returns the newest notifications first. The feed is global:
// reads are not filtered by target user.
func (s *NotificationService) PullRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
