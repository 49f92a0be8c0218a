package ws

import (
	"log"

	"github.com/streamvault/streamvault/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyNotification(notification *domain.Notification) {
	evt, err := NewEvent(EventTypeNotification, notification)
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt, notification.TargetUserID)
}
