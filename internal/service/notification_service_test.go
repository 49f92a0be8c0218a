package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/streamvault/streamvault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationRepo is append-only, returning newest-first like the
// postgres repo's ORDER BY created_at DESC.
type fakeNotificationRepo struct {
	log []domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	f.log = append(f.log, *n)
	return nil
}

func (f *fakeNotificationRepo) ListRecent(_ context.Context, limit int) ([]domain.Notification, error) {
	var out []domain.Notification
	for i := len(f.log) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.log[i])
	}
	return out, nil
}

type recordingNotifier struct {
	pushed []*domain.Notification
}

func (r *recordingNotifier) NotifyNotification(n *domain.Notification) {
	r.pushed = append(r.pushed, n)
}

func TestPost_DefaultsAndFanOut(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{}
	notifier := &recordingNotifier{}
	svc := NewNotificationService(repo, notifier)

	n, err := svc.Post(context.Background(), "New arrivals this week", "", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.KindInfo, n.Kind)
	assert.False(t, n.IsRead)
	assert.Nil(t, n.TargetUserID)
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.False(t, n.CreatedAt.IsZero())

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, n, notifier.pushed[0])
	require.Len(t, repo.log, 1)
}

func TestPost_Targeted(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{}
	notifier := &recordingNotifier{}
	svc := NewNotificationService(repo, notifier)

	target := uuid.New()
	n, err := svc.Post(context.Background(), "Your plan was updated", "billing", &target)
	require.NoError(t, err)

	assert.Equal(t, "billing", n.Kind)
	require.NotNil(t, n.TargetUserID)
	assert.Equal(t, target, *n.TargetUserID)
}

func TestPullRecent_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	const n = 15
	for i := 0; i < n; i++ {
		_, err := svc.Post(context.Background(), fmt.Sprintf("message %d", i), "", nil)
		require.NoError(t, err)
	}

	got, err := svc.PullRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("message %d", n-1-i), got[i].Message)
	}
}

func TestPullRecent_DefaultLimit(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	for i := 0; i < 15; i++ {
		_, err := svc.Post(context.Background(), fmt.Sprintf("message %d", i), "", nil)
		require.NoError(t, err)
	}

	got, err := svc.PullRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultRecentLimit)
}

func TestPost_NoNotifierStillPersists(t *testing.T) {
	t.Parallel()

	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	_, err := svc.Post(context.Background(), "hello", "", nil)
	require.NoError(t, err)
	assert.Len(t, repo.log, 1)
}
