package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streamvault/streamvault/internal/domain"
)

type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, kind, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.TargetUserID, n.Message, n.Kind, n.IsRead, n.CreatedAt,
	)
	return err
}

func (r *NotificationRepo) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, message, kind, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.TargetUserID, &n.Message, &n.Kind, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
