// Package ws defines the websocket frames exchanged between the game UI and
// the turn controller.
package ws

import (
	"encoding/json"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

// MessageType discriminates websocket frames in both directions.
type MessageType string

const (
	// client to server
	MessageTypeMove   MessageType = "move"
	MessageTypeResign MessageType = "resign"

	// server to client
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeGameResult MessageType = "gameResult"
	MessageTypeError      MessageType = "error"
)

// Message is one websocket frame. Payload stays raw until Type is known.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage wraps a payload into a frame.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// MovePayload is the client's move request. Promotion names the piece a
// promoting pawn becomes; empty means queen. Draughts ignores it.
type MovePayload struct {
	From      board.Position `json:"from"`
	To        board.Position `json:"to"`
	Promotion string         `json:"promotion,omitempty"`
}

// ErrorPayload carries a rejected request back to the client.
type ErrorPayload struct {
	Message string `json:"message"`
}
