package poker

import "slices"

// RankSequence holds a hand's ranks sorted highest first
type RankSequence [HandSize]Rank

// wheel is the raw sequence of A-2-3-4-5 before the ace is played low
var wheel = RankSequence{Ace, Five, Four, Three, Two}

// Ranks returns the hand's ranks in descending order. The wheel A-5-4-3-2
// comes back as 5-4-3-2-1 so that every detector and tie-break sees the
// ace as the lowest card.
func Ranks(h Hand) RankSequence {
	var seq RankSequence
	for i, c := range h {
		seq[i] = c.Rank
	}
	slices.Sort(seq[:])
	slices.Reverse(seq[:])

	if seq == wheel {
		return RankSequence{Five, Four, Three, Two, LowAce}
	}
	return seq
}

// Max returns the highest rank in the sequence
func (seq RankSequence) Max() Rank {
	return seq[0]
}

// count returns how many times r occurs in the sequence
func (seq RankSequence) count(r Rank) int {
	n := 0
	for _, v := range seq {
		if v == r {
			n++
		}
	}
	return n
}

// IsStraight reports whether the sequence is five consecutive ranks
func IsStraight(seq RankSequence) bool {
	for i := 0; i < len(seq)-1; i++ {
		if seq[i]-1 != seq[i+1] {
			return false
		}
	}
	return true
}

// IsFlush reports whether all five cards share a suit
func IsFlush(h Hand) bool {
	for i := 0; i < len(h)-1; i++ {
		if h[i].Suit != h[i+1].Suit {
			return false
		}
	}
	return true
}

// Kind returns the first rank, scanning highest first, that occurs exactly
// n times. ok is false when there is none.
func Kind(n int, seq RankSequence) (rank Rank, ok bool) {
	for _, r := range seq {
		if seq.count(r) == n {
			return r, true
		}
	}
	return NoRank, false
}

// TwoPairRanks returns the ranks of two distinct pairs, highest first.
func TwoPairRanks(seq RankSequence) (high, low Rank, ok bool) {
	high, ok = Kind(2, seq)
	if !ok {
		return NoRank, NoRank, false
	}

	for i := len(seq) - 1; i >= 0; i-- {
		if r := seq[i]; r != high && seq.count(r) == 2 {
			return high, r, true
		}
	}
	return NoRank, NoRank, false
}
