package websocket

import (
	"encoding/json"
)

const (
	ActionSession = "session"
	ActionDisplay = "display"
	ActionPrompt  = "prompt"
	ActionInput   = "input"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text,omitempty"`
	Line      string `json:"line,omitempty"`
}
