package network

import (
	"encoding/json"
	"fmt"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	MsgHello MessageType = "hello" // First message, carries the peer id
	MsgState MessageType = "state" // Frame snapshot
)

// Message is the JSON envelope of every frame sent to spectators
type Message struct {
	Type    MessageType     `json:"type"`
	Seq     uint64          `json:"seq"` // Publish counter, 0 for control messages
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode marshals the envelope with payload already in JSON form
func (m *Message) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Type, err)
	}
	return data, nil
}

// NewStateMessage wraps a marshalled snapshot
func NewStateMessage(seq uint64, payload []byte) *Message {
	return &Message{Type: MsgState, Seq: seq, Payload: payload}
}

type helloPayload struct {
	PeerID PeerID `json:"peer_id"`
}

// NewHelloMessage greets a new spectator with its id
func NewHelloMessage(id PeerID) (*Message, error) {
	payload, err := json.Marshal(helloPayload{PeerID: id})
	if err != nil {
		return nil, fmt.Errorf("encode hello: %w", err)
	}
	return &Message{Type: MsgHello, Payload: payload}, nil
}
