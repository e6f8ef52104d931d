// Package messages defines the websocket wire format
package messages

import (
	"encoding/json"

	"github.com/tecu23/piece-color/internal/color"
)

// Outbound events
const (
	EventConnected = "CONNECTED"
	EventColorCode = "COLOR_CODE"
	EventOpposite  = "OPPOSITE"
	EventError     = "ERROR"
)

// OutboundMessage is how we wrap responses before sending
// them to the client
type OutboundMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type ConnectedPayload struct {
	ConnectionID string `json:"connection_id"`
}

// ColorCodePayload answers a ColorCodeRequest. Code is null when the
// discriminant is not a color.
type ColorCodePayload struct {
	RequestID    string      `json:"request_id"`
	Discriminant json.Number `json:"discriminant"`
	Code         *string     `json:"code"`
}

type OppositePayload struct {
	Color    color.Color `json:"color"`
	Opposite color.Color `json:"opposite"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
