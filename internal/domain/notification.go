package domain

import (
	"time"

	"github.com/google/uuid"
)

// KindInfo is the default notification category.
const KindInfo = "info"

// Notification is a timestamped message, optionally targeted at a single
// user. A nil TargetUserID means broadcast.
type Notification struct {
	ID           uuid.UUID  `json:"id"`
	TargetUserID *uuid.UUID `json:"user_id,omitempty"`
	Message      string     `json:"message"`
	Kind         string     `json:"kind"`
	IsRead       bool       `json:"is_read"`
	CreatedAt    time.Time  `json:"created_at"`
}
