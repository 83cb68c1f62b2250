package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCompare(t *testing.T) {
	t.Parallel()

	low := Score{Category: OnePair, Tiebreak: [TiebreakWidth]Rank{11, 11, 9, 4, 2}}
	high := Score{Category: OnePair, Tiebreak: [TiebreakWidth]Rank{11, 11, 9, 5, 2}}
	better := Score{Category: TwoPair}

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.Equal(t, 1, better.Compare(high), "category decides before tie-break")
	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.False(t, low.Less(low))
}

func TestScorePadding(t *testing.T) {
	t.Parallel()

	// Padded slots sit below every real rank, including the low ace.
	assert.Less(t, NoRank, LowAce)

	straight := Classify(MustParseHand("5D 6C 7H 8S 9D"))
	for _, r := range straight.Tiebreak[1:] {
		assert.Equal(t, NoRank, r)
	}
}

func TestScoreString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		want string
	}{
		{sfHand, "Straight Flush (10)"},
		{fkHand, "Four of a Kind (9,7)"},
		{fhHand, "Full House (10,7)"},
		{"KS KD 3H 3C 8S", "Two Pair (0,13,13,13,8,3,3)"},
		{"AS QD 9H 5C 3S", "High Card (14,12,9,5,3)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(MustParseHand(tt.hand)).String())
		})
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	names := map[Category]string{
		HighCard:      "High Card",
		OnePair:       "One Pair",
		TwoPair:       "Two Pair",
		ThreeOfAKind:  "Three of a Kind",
		Straight:      "Straight",
		Flush:         "Flush",
		FullHouse:     "Full House",
		FourOfAKind:   "Four of a Kind",
		StraightFlush: "Straight Flush",
		Category(42):  "Unknown",
	}
	for c, want := range names {
		assert.Equal(t, want, c.String())
	}
}
