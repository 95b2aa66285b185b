package push

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// Broadcaster fans a payload out to the subscribers of a topic.
type Broadcaster interface {
	BroadcastToTopic(topic, messageType string, data interface{}) error
}

// Hub tracks connected WebSocket clients and their topic subscriptions. The
// last message sent on each topic is retained and replayed to clients that
// subscribe later, so a new viewer sees the current state straight away.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	retained   map[string][]byte
	stopped    chan struct{}
	mu         sync.RWMutex
	logger     *logrus.Logger
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	id     string
	topics map[string]bool
	mu     sync.RWMutex
}

type Message struct {
	Type      string          `json:"type"`
	Topic     string          `json:"topic"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type Subscription struct {
	Action string   `json:"action"` // "subscribe" or "unsubscribe"
	Topics []string `json:"topics"`
}

func NewHub(logger *logrus.Logger) *Hub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		retained:   make(map[string][]byte),
		stopped:    make(chan struct{}),
		logger:     logger,
	}
}

// Run processes registrations until done is closed.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			close(h.stopped)
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.replayLocked(client, client.Topics())
			h.mu.Unlock()
			h.logger.WithField("client_id", client.id).Debug("WebSocket client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.WithField("client_id", client.id).Debug("WebSocket client unregistered")
		}
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stopped:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stopped:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) BroadcastToTopic(topic, messageType string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	messageBytes, err := json.Marshal(Message{
		Type:      messageType,
		Topic:     topic,
		Data:      jsonData,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.retained[topic] = messageBytes
	for client := range h.clients {
		if client.IsSubscribedTo(topic) {
			select {
			case client.send <- messageBytes:
			default:
				// slow consumer, drop this frame
			}
		}
	}
	return nil
}

// subscribe records new topics for a client and replays what is retained on them.
func (h *Hub) subscribe(client *Client, topics []string) {
	client.mu.Lock()
	for _, topic := range topics {
		client.topics[topic] = true
	}
	client.mu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.clients[client] {
		h.replayLocked(client, topics)
	}
}

func (h *Hub) replayLocked(client *Client, topics []string) {
	for _, topic := range topics {
		for retainedTopic, msg := range h.retained {
			if topic != "*" && topic != retainedTopic {
				continue
			}
			select {
			case client.send <- msg:
			default:
			}
		}
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, id string, topics []string) *Client {
	c := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		id:     id,
		topics: make(map[string]bool),
	}
	for _, topic := range topics {
		c.topics[topic] = true
	}
	return c
}

func (c *Client) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	topics := make([]string, 0, len(c.topics))
	for topic := range c.topics {
		topics = append(topics, topic)
	}
	return topics
}

func (c *Client) IsSubscribedTo(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.topics[topic] || c.topics["*"] // "*" subscribes to all topics
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var sub Subscription
		if err := c.conn.ReadJSON(&sub); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).Warn("WebSocket read failed")
			}
			return
		}

		switch sub.Action {
		case "subscribe":
			c.hub.subscribe(c, sub.Topics)
		case "unsubscribe":
			c.mu.Lock()
			for _, topic := range sub.Topics {
				delete(c.topics, topic)
			}
			c.mu.Unlock()
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// one frame per message so clients can decode each as JSON
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
