package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Hub manages all active WebSocket connections and fans notifications out
// to them. Connections are keyed by connection ID, so one user may hold
// several at once.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMsg
}

type broadcastMsg struct {
	data []byte
	// targetUserID limits delivery to connections of a single user.
	// nil means broadcast to everyone.
	targetUserID *uuid.UUID
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMsg, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.id] = client
			log.Printf("ws hub: user %s connected (%d total)", client.userID, len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
				close(client.done)
				log.Printf("ws hub: user %s disconnected (%d total)", client.userID, len(h.clients))
			}

		case msg := <-h.broadcast:
			for id, client := range h.clients {
				if msg.targetUserID != nil && client.userID != *msg.targetUserID {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// Client buffer full - disconnect
					delete(h.clients, id)
					close(client.send)
					close(client.done)
				}
			}
		}
	}
}

// Broadcast sends an event to connected clients. A nil targetUserID reaches
// every connection; otherwise only the target user's connections. Delivery
// is fire-and-forget - a slow subscriber is dropped, never waited on.
func (h *Hub) Broadcast(event *Event, targetUserID *uuid.UUID) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	h.broadcast <- &broadcastMsg{
		data:         data,
		targetUserID: targetUserID,
	}
}
