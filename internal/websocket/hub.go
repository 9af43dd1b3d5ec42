package websocket

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"radiant-system-be/internal/model"
	"radiant-system-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const clusterChannel = "radiant_cluster_events"

type Hub struct {
	// Registered clients map: email -> list of clients (multi-device)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, optional
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Email] = append(h.clients[client.Email], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"email":     client.Email,
				"moderator": client.Moderator,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Email]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Email] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Email]) == 0 {
					delete(h.clients, client.Email)
				}
			}
			h.mu.Unlock()
		}
	}
}

type frame struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
}

type clusterPayload struct {
	// Target is an email, "*" for everyone, or "mods" for moderators.
	Target  string          `json:"target"`
	Message json.RawMessage `json:"message"`
}

// Send pushes a notification to every device of one user.
func (h *Hub) Send(email string, notification model.Notification) {
	data, _ := json.Marshal(frame{Kind: "notification", Data: notification})
	h.deliver(email, data)
	h.publishCluster(email, data)
}

// SendModerators pushes a notification to every connected moderator.
func (h *Hub) SendModerators(notification model.Notification) {
	data, _ := json.Marshal(frame{Kind: "notification", Data: notification})
	h.deliverModerators(data)
	h.publishCluster("mods", data)
}

// Broadcast pushes a system-wide notification to every connected client.
func (h *Hub) Broadcast(notification model.Notification) {
	data, _ := json.Marshal(frame{Kind: "notification", Data: notification})
	h.deliverAll(data)
	h.publishCluster("*", data)
}

// SendBadgeCounts refreshes the dashboard badges on moderator clients.
func (h *Hub) SendBadgeCounts(counts model.BadgeCounts) {
	data, _ := json.Marshal(frame{Kind: "badge_counts", Data: counts})
	h.deliverModerators(data)
	h.publishCluster("mods", data)
}

func (h *Hub) deliver(email string, data []byte) {
	h.mu.RLock()
	clients := h.clients[strings.ToLower(email)]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"email": email})
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) deliverModerators(data []byte) {
	h.mu.RLock()
	var targets []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			if client.Moderator {
				targets = append(targets, client)
			}
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) deliverAll(data []byte) {
	h.mu.RLock()
	var targets []*Client
	for _, clients := range h.clients {
		targets = append(targets, clients...)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) publishCluster(target string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(clusterPayload{Target: target, Message: data})
	h.rdb.Publish(context.Background(), clusterChannel, payload)
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		switch payload.Target {
		case "*":
			h.deliverAll(payload.Message)
		case "mods":
			h.deliverModerators(payload.Message)
		default:
			h.deliver(payload.Target, payload.Message)
		}
	}
}
