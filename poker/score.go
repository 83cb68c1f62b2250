package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the nine hand classes ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// TiebreakWidth is the widest payload any category produces:
// two-pair scores carry a trips slot, a pair slot and the full sequence.
const TiebreakWidth = 2 + HandSize

// payloadWidth is the number of populated tie-break slots per category.
var payloadWidth = [...]int{
	HighCard:      HandSize,
	OnePair:       HandSize,
	TwoPair:       TiebreakWidth,
	ThreeOfAKind:  1 + HandSize,
	Straight:      1,
	Flush:         HandSize,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
}

// Score is the strength of a hand. Scores are ordered by category and then
// lexicographically by tie-break; slots a category does not use hold
// NoRank, below every real rank.
type Score struct {
	Category Category
	Tiebreak [TiebreakWidth]Rank
}

// Compare returns -1 if s is weaker than other, 0 if equal and 1 if stronger.
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		if s.Category < other.Category {
			return -1
		}
		return 1
	}

	for i := range s.Tiebreak {
		if s.Tiebreak[i] < other.Tiebreak[i] {
			return -1
		}
		if s.Tiebreak[i] > other.Tiebreak[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether s is weaker than other
func (s Score) Less(other Score) bool {
	return s.Compare(other) < 0
}

// Payload returns the tie-break slots the category populates. An absent
// optional inside the payload is reported as NoRank.
func (s Score) Payload() []Rank {
	n := TiebreakWidth
	if int(s.Category) < len(payloadWidth) {
		n = payloadWidth[s.Category]
	}
	out := make([]Rank, n)
	copy(out, s.Tiebreak[:n])
	return out
}

// String returns e.g. "Full House (10,7)"
func (s Score) String() string {
	payload := s.Payload()
	parts := make([]string, len(payload))
	for i, r := range payload {
		parts[i] = fmt.Sprint(uint8(r))
	}
	return fmt.Sprintf("%s (%s)", s.Category, strings.Join(parts, ","))
}
