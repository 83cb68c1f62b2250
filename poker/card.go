package poker

import (
	"fmt"
	"unicode/utf8"
)

// Rank is the numeric strength of a card face. Real cards carry 2..14;
// LowAce only appears in a wheel-normalized RankSequence and NoRank pads
// unused tie-break slots.
type Rank uint8

const (
	NoRank Rank = 0
	LowAce Rank = 1
)

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank symbol ("T", "A", ...)
func (r Rank) String() string {
	switch {
	case r == LowAce || r == Ace:
		return "A"
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

// RankOf maps a rank symbol to its value. Face symbols are accepted in
// either case.
func RankOf(symbol rune) (Rank, error) {
	switch symbol {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(symbol - '0'), nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return NoRank, fmt.Errorf("%w: invalid rank %q", ErrMalformedCard, symbol)
	}
}

// Suit identifies a card's suit. Suits compare for equality only.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the canonical suit letter
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph used for display
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// SuitOf maps a suit letter (either case) or glyph to a Suit.
func SuitOf(symbol rune) (Suit, error) {
	switch symbol {
	case 'C', 'c', '♣':
		return Clubs, nil
	case 'D', 'd', '♦':
		return Diamonds, nil
	case 'H', 'h', '♥':
		return Hearts, nil
	case 'S', 's', '♠':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: invalid suit %q", ErrMalformedCard, symbol)
	}
}

// Card is a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card token, e.g. "TC"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-symbol token such as "TC", "as" or "K♥".
func ParseCard(token string) (Card, error) {
	if utf8.RuneCountInString(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be a rank followed by a suit", ErrMalformedCard, token)
	}

	rankSymbol, size := utf8.DecodeRuneInString(token)
	suitSymbol, _ := utf8.DecodeRuneInString(token[size:])

	rank, err := RankOf(rankSymbol)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}
	suit, err := SuitOf(suitSymbol)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", token, err)
	}

	return NewCard(rank, suit), nil
}
