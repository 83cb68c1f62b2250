package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lox/showdown/poker"
)

// requestError is a failure reported back to the client
type requestError struct {
	code string
	err  error
}

func (e *requestError) Error() string { return e.err.Error() }

func (e *requestError) Unwrap() error { return e.err }

// errorCode maps poker validation errors onto protocol codes
func errorCode(err error) string {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return reqErr.code
	case errors.Is(err, poker.ErrMalformedCard):
		return ErrCodeMalformedCard
	case errors.Is(err, poker.ErrInvalidHandSize):
		return ErrCodeInvalidHandSize
	case errors.Is(err, poker.ErrEmptyCollection):
		return ErrCodeEmptyCollection
	default:
		return ErrCodeInternal
	}
}

// handle answers a single request. It always returns a reply; failures are
// reported as error messages.
func (s *Server) handle(ctx context.Context, msg *Message) *Message {
	requestID := msg.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	replyType, data, err := s.dispatch(ctx, msg)
	if err != nil {
		s.logger.Debug("Request rejected", "type", msg.Type, "requestId", requestID, "error", err)
		replyType = MessageTypeError
		data = ErrorData{Code: errorCode(err), Message: err.Error()}
	}

	reply, err := NewMessage(replyType, data, requestID, s.clock.Now())
	if err != nil {
		// Reply payloads are plain structs, so this only fails on a bug
		s.logger.Error("Failed to encode reply", "type", replyType, "error", err)
		reply = &Message{Type: MessageTypeError, RequestID: requestID, Timestamp: s.clock.Now()}
	}
	return reply
}

func (s *Server) dispatch(ctx context.Context, msg *Message) (MessageType, any, error) {
	switch msg.Type {
	case MessageTypeClassify:
		hands, err := s.parseHands(msg.Data)
		if err != nil {
			return "", nil, err
		}
		return MessageTypeClassification, classify(hands), nil

	case MessageTypeShowdown:
		hands, err := s.parseHands(msg.Data)
		if err != nil {
			return "", nil, err
		}
		result, err := s.showdown(ctx, hands)
		if err != nil {
			return "", nil, err
		}
		return MessageTypeShowdownResult, result, nil

	default:
		return "", nil, &requestError{
			code: ErrCodeUnknownType,
			err:  fmt.Errorf("unknown message type %q", msg.Type),
		}
	}
}

func (s *Server) parseHands(raw json.RawMessage) ([]poker.Hand, error) {
	var data HandsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &requestError{code: ErrCodeInvalidMessage, err: fmt.Errorf("failed to parse hands: %w", err)}
	}

	if len(data.Hands) == 0 {
		return nil, poker.ErrEmptyCollection
	}
	if len(data.Hands) > s.cfg.MaxHands {
		return nil, &requestError{
			code: ErrCodeTooManyHands,
			err:  fmt.Errorf("got %d hands, limit is %d", len(data.Hands), s.cfg.MaxHands),
		}
	}

	hands := make([]poker.Hand, len(data.Hands))
	for i, tokens := range data.Hands {
		h, err := poker.ParseHand(tokens...)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		hands[i] = h
	}
	return hands, nil
}

func classify(hands []poker.Hand) ClassificationData {
	results := make([]HandResult, len(hands))
	for i, h := range hands {
		results[i] = newHandResult(i, h, poker.Classify(h))
	}
	return ClassificationData{Results: results}
}

func (s *Server) showdown(ctx context.Context, hands []poker.Hand) (ShowdownResultData, error) {
	best, err := poker.SelectBestParallel(ctx, hands, s.cfg.Workers)
	if err != nil {
		return ShowdownResultData{}, err
	}

	standings, err := poker.Standings(hands)
	if err != nil {
		return ShowdownResultData{}, err
	}

	result := ShowdownResultData{
		Hand:      best.Tokens(),
		Standings: make([]StandingData, len(standings)),
	}
	for i, st := range standings {
		result.Standings[i] = StandingData{
			HandResult: newHandResult(st.Index, st.Hand, st.Score),
			Place:      st.Place,
		}
		if st.Place == 0 {
			result.Winners = append(result.Winners, st.Index)
		}
	}
	// Standings are stable, so the first winner is the first best hand in input order
	result.Best = result.Winners[0]
	return result, nil
}
