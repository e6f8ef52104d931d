package messages

import "encoding/json"

// Inbound message types
const (
	TypeColorCode = "COLOR_CODE"
	TypeOpposite  = "OPPOSITE"
)

// InboundMessage is the generic wrapper for messages coming from the client.
// The "type" field tells us the action; "payload" is the data we parse further.
type InboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ColorCodeRequest asks for the code of a discriminant. Discriminant is
// kept as a number literal so integers of any size can be answered.
type ColorCodeRequest struct {
	RequestID    string      `json:"request_id,omitempty"`
	Discriminant json.Number `json:"discriminant"`
}

// OppositeRequest asks for the opposite of a color code
type OppositeRequest struct {
	Color string `json:"color"`
}
