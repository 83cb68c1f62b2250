package server

import (
	"encoding/json"
	"time"

	"github.com/lox/showdown/poker"
)

// MessageType identifies a websocket message
type MessageType string

const (
	// Client → Server
	MessageTypeClassify MessageType = "classify"
	MessageTypeShowdown MessageType = "showdown"

	// Server → Client
	MessageTypeClassification MessageType = "classification"
	MessageTypeShowdownResult MessageType = "showdown_result"
	MessageTypeError          MessageType = "error"
)

// Error codes sent in ErrorData
const (
	ErrCodeInvalidMessage  = "invalid_message"
	ErrCodeMalformedCard   = "malformed_card"
	ErrCodeInvalidHandSize = "invalid_hand_size"
	ErrCodeEmptyCollection = "empty_collection"
	ErrCodeTooManyHands    = "too_many_hands"
	ErrCodeUnknownType     = "unknown_type"
	ErrCodeInternal        = "internal"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message stamped with the given time
func NewMessage(messageType MessageType, data any, requestID string, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
		RequestID: requestID,
	}, nil
}

// HandsData carries the hands of a classify or showdown request, one
// slice of card tokens per hand.
type HandsData struct {
	Hands [][]string `json:"hands"`
}

// HandResult describes one classified hand
type HandResult struct {
	Index         int      `json:"index"`
	Hand          []string `json:"hand"`
	Category      string   `json:"category"`
	CategoryValue int      `json:"categoryValue"`
	Payload       []int    `json:"payload"`
}

// ClassificationData answers a classify request
type ClassificationData struct {
	Results []HandResult `json:"results"`
}

// StandingData is a hand's finishing place in a showdown
type StandingData struct {
	HandResult
	Place int `json:"place"`
}

// ShowdownResultData answers a showdown request
type ShowdownResultData struct {
	Best      int            `json:"best"`
	Hand      []string       `json:"hand"`
	Winners   []int          `json:"winners"`
	Standings []StandingData `json:"standings"`
}

// ErrorData describes a rejected request
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newHandResult(index int, h poker.Hand, score poker.Score) HandResult {
	payload := score.Payload()
	values := make([]int, len(payload))
	for i, r := range payload {
		values[i] = int(r)
	}

	return HandResult{
		Index:         index,
		Hand:          h.Tokens(),
		Category:      score.Category.String(),
		CategoryValue: int(score.Category),
		Payload:       values,
	}
}
