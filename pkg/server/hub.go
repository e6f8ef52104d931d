// Package server routes websocket clients to color lookups
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tecu23/piece-color/internal/color"
	"github.com/tecu23/piece-color/pkg/binding"
	"github.com/tecu23/piece-color/pkg/events"
	"github.com/tecu23/piece-color/pkg/messages"
)

// InboundHubMessage are the messages that the hub receives
type InboundHubMessage struct {
	Conn    *Connection             // who sent it
	Message messages.InboundMessage // decoded envelope
}

// Hub keeps track of all active connections and is responsible for registering/unregistering them.
// All state is owned by the Run goroutine; the channels serialize access to it.
type Hub struct {
	connections map[*Connection]bool // Registered connections

	register   chan *Connection       // Incoming registration
	unregister chan *Connection       // Incoming unregistration
	inbound    chan InboundHubMessage // Channel of inbound messages to route
	done       chan struct{}          // Closed once Run returns

	publisher *events.Publisher
	logger    *zap.Logger
}

// NewHub creates a new hub
func NewHub(publisher *events.Publisher, logger *zap.Logger) *Hub {
	return &Hub{
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		inbound:     make(chan InboundHubMessage),
		done:        make(chan struct{}),
		publisher:   publisher,
		logger:      logger,
	}
}

// Run is the main execution of the hub. It returns when ctx is cancelled,
// after closing every registered connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case conn := <-h.register:
			h.registerConnection(conn)

		case conn := <-h.unregister:
			h.unregisterConnection(conn)

		case msg := <-h.inbound:
			h.handleInbound(msg)
		}
	}
}

// Done is closed once the hub has stopped
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Register adds a connection. It reports false if the hub has stopped.
func (h *Hub) Register(conn *Connection) bool {
	select {
	case h.register <- conn:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

func (h *Hub) route(msg InboundHubMessage) bool {
	select {
	case h.inbound <- msg:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) registerConnection(conn *Connection) {
	h.connections[conn] = true
	h.logger.Debug("New connection registered",
		zap.String("connection_id", conn.ID.String()),
		zap.Int("connections", len(h.connections)),
	)

	h.publisher.Publish(events.Event{
		Type:         events.EventConnectionOpened,
		ConnectionID: conn.ID.String(),
	})

	h.sendMessage(conn, messages.OutboundMessage{
		Event:   messages.EventConnected,
		Payload: messages.ConnectedPayload{ConnectionID: conn.ID.String()},
	})
}

func (h *Hub) unregisterConnection(conn *Connection) {
	if _, ok := h.connections[conn]; ok {
		delete(h.connections, conn)
		close(conn.send)
		h.logger.Debug("Connection unregistered",
			zap.String("connection_id", conn.ID.String()),
			zap.Int("connections", len(h.connections)),
		)
	}
}

func (h *Hub) shutdown() {
	for conn := range h.connections {
		delete(h.connections, conn)
		close(conn.send)
	}

	h.logger.Info("Hub shut down")
}

// handleInbound decodes and routes a message from a client.
func (h *Hub) handleInbound(msg InboundHubMessage) {
	// the connection may have gone away while its message was queued
	if !h.connections[msg.Conn] {
		return
	}

	switch msg.Message.Type {
	case messages.TypeColorCode:
		var req messages.ColorCodeRequest
		if err := json.Unmarshal(msg.Message.Payload, &req); err != nil {
			h.sendError(msg.Conn, "Invalid COLOR_CODE payload")
			return
		}

		h.handleColorCode(msg.Conn, req)

	case messages.TypeOpposite:
		var req messages.OppositeRequest
		if err := json.Unmarshal(msg.Message.Payload, &req); err != nil {
			h.sendError(msg.Conn, "Invalid OPPOSITE payload")
			return
		}

		c, ok := color.ParseCode(req.Color)
		if !ok {
			h.sendError(msg.Conn, fmt.Sprintf("Unknown color %q", req.Color))
			return
		}

		h.sendMessage(msg.Conn, messages.OutboundMessage{
			Event:   messages.EventOpposite,
			Payload: messages.OppositePayload{Color: c, Opposite: c.Opp()},
		})

	case "":
		h.sendError(msg.Conn, "Invalid message")

	default:
		h.sendError(msg.Conn, "Unknown message type")
	}
}

func (h *Hub) handleColorCode(conn *Connection, req messages.ColorCodeRequest) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	res, err := binding.ParseLookup(req.Discriminant.String())
	if err != nil {
		h.sendError(conn, fmt.Sprintf("Invalid COLOR_CODE payload: %s", err))
		return
	}

	eventType := events.EventColorResolved
	if !res.Found() {
		eventType = events.EventColorUnresolved
		h.logger.Debug("Discriminant has no color",
			zap.String("connection_id", conn.ID.String()),
			zap.String("discriminant", res.Discriminant.String()),
		)
	}

	h.publisher.Publish(events.Event{
		Type:         eventType,
		ConnectionID: conn.ID.String(),
		Payload:      res,
	})

	h.sendMessage(conn, messages.OutboundMessage{
		Event: messages.EventColorCode,
		Payload: messages.ColorCodePayload{
			RequestID:    req.RequestID,
			Discriminant: res.Discriminant,
			Code:         res.Code,
		},
	})
}

func (h *Hub) sendError(conn *Connection, msg string) {
	h.sendMessage(conn, messages.OutboundMessage{
		Event:   messages.EventError,
		Payload: messages.ErrorPayload{Message: msg},
	})
}

func (h *Hub) sendMessage(conn *Connection, msg messages.OutboundMessage) {
	conn.SendJSON(msg)
}
