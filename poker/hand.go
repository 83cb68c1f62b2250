package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in every hand
const HandSize = 5

// Hand is an ordered set of exactly five cards
type Hand [HandSize]Card

// NewHand builds a hand from exactly five cards
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}
	copy(h[:], cards)
	return h, nil
}

// ParseHand parses one token per card
func ParseHand(tokens ...string) (Hand, error) {
	cards := make([]Card, 0, len(tokens))
	for _, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, card)
	}
	return NewHand(cards...)
}

// ParseHandString parses a whitespace separated hand such as "6C 7C 8C 9C TC"
func ParseHandString(s string) (Hand, error) {
	return ParseHand(strings.Fields(s)...)
}

// MustParseHand is like ParseHandString but panics on error
func MustParseHand(s string) Hand {
	h, err := ParseHandString(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns the hand as a slice
func (h Hand) Cards() []Card {
	return h[:]
}

// Tokens returns the card tokens in hand order
func (h Hand) Tokens() []string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.String()
	}
	return tokens
}

// String returns the hand as space separated tokens
func (h Hand) String() string {
	return strings.Join(h.Tokens(), " ")
}
