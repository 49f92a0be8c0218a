package service

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

var trendingTitles = []string{"Stranger Things", "Inception", "The Matrix", "Pulp Fiction"}

// Trending periodically posts a synthetic broadcast notification. It is an
// optional collaborator of the feed, not part of its contract.
type Trending struct {
	notifications *NotificationService
	interval      time.Duration
}

func NewTrending(notifications *NotificationService, interval time.Duration) *Trending {
	return &Trending{
		notifications: notifications,
		interval:      interval,
	}
}

// Run blocks until ctx is cancelled. Call it in a goroutine.
func (t *Trending) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			title := trendingTitles[rand.IntN(len(trendingTitles))]
			msg := fmt.Sprintf("Trending: %s is heating up!", title)
			if _, err := t.notifications.Post(ctx, msg, "", nil); err != nil {
				log.Printf("trending: post failed: %v", err)
			}
		}
	}
}
