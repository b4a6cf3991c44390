package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Config holds the WebSocket connection settings for the chat hub.
type Config struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  4096,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// InboundHandler consumes a message a connected member sent to their
// team's room.
type InboundHandler func(ctx context.Context, teamID, senderID uuid.UUID, body string)

type broadcastMessage struct {
	teamID uuid.UUID
	data   []byte
}

// Hub fans chat messages out to every open connection in a team's
// room. One room per team, rooms are created and dropped as members
// connect and disconnect.
type Hub struct {
	rooms map[uuid.UUID]map[*connection]bool
	mu    sync.RWMutex

	upgrader websocket.Upgrader
	config   Config

	broadcastCh chan broadcastMessage
	handler     InboundHandler
}

type connection struct {
	id     string
	userID uuid.UUID
	teamID uuid.UUID
	conn   *websocket.Conn
	send   chan []byte
	hub    *Hub
}

// inboundMessage is the JSON frame clients send over the socket.
type inboundMessage struct {
	Body string `json:"body"`
}

// NewHub creates a new chat hub.
func NewHub(config Config) *Hub {
	return &Hub{
		rooms: make(map[uuid.UUID]map[*connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan broadcastMessage, 1000),
	}
}

// OnMessage registers the handler invoked for every frame a client
// sends. Must be called before Join.
func (h *Hub) OnMessage(fn InboundHandler) {
	h.handler = fn
}

// Start processes broadcasts until ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	log.Info().Msg("chat hub started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("chat hub shutting down")
			return
		case message := <-h.broadcastCh:
			h.deliver(message)
		}
	}
}

// Broadcast queues data for every connection in the team's room. A
// full queue drops the message rather than blocking the caller.
func (h *Hub) Broadcast(teamID uuid.UUID, data []byte) {
	select {
	case h.broadcastCh <- broadcastMessage{teamID: teamID, data: data}:
	default:
		log.Warn().Str("team_id", teamID.String()).Msg("broadcast channel full, dropping message")
	}
}

// Join upgrades the request to a WebSocket and adds it to the team's
// room. The caller is responsible for authorization.
func (h *Hub) Join(w http.ResponseWriter, r *http.Request, teamID, userID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade chat connection")
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	c := &connection{
		id:     uuid.New().String(),
		userID: userID,
		teamID: teamID,
		conn:   conn,
		send:   make(chan []byte, 256),
		hub:    h,
	}

	h.register(c)

	go c.writePump()
	go c.readPump()

	log.Info().
		Str("connection_id", c.id).
		Str("user_id", userID.String()).
		Str("team_id", teamID.String()).
		Msg("chat connection established")

	return nil
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[c.teamID] == nil {
		h.rooms[c.teamID] = make(map[*connection]bool)
	}
	h.rooms[c.teamID][c] = true
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, exists := h.rooms[c.teamID]; exists {
		if _, exists := room[c]; exists {
			delete(room, c)
			close(c.send)

			if len(room) == 0 {
				delete(h.rooms, c.teamID)
			}
		}
	}
}

func (h *Hub) deliver(message broadcastMessage) {
	h.mu.RLock()
	room, exists := h.rooms[message.teamID]
	if !exists {
		h.mu.RUnlock()
		return
	}

	targets := make([]*connection, 0, len(room))
	for c := range room {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- message.data:
		default:
			// slow or dead connection, drop it
			log.Warn().
				Str("connection_id", c.id).
				Str("user_id", c.userID.String()).
				Msg("connection send buffer full, closing connection")
			h.unregister(c)
			c.conn.Close()
		}
	}
}

func (c *connection) writePump() {
	ticker := time.NewTicker(c.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.hub.unregister(c)
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().Err(err).Str("connection_id", c.id).Msg("failed to write chat message")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("connection_id", c.id).Msg("unexpected chat close error")
			}
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Str("connection_id", c.id).Msg("ignoring malformed chat frame")
			continue
		}
		if c.hub.handler != nil {
			c.hub.handler(context.Background(), c.teamID, c.userID, msg.Body)
		}

		c.conn.SetReadDeadline(time.Now().Add(c.hub.config.ReadTimeout))
	}
}
