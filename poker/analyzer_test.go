package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand string
		want RankSequence
	}{
		{"straight flush", "6C 7C 8C 9C TC", RankSequence{10, 9, 8, 7, 6}},
		{"four of a kind", "9D 9H 9S 9C 7D", RankSequence{9, 9, 9, 9, 7}},
		{"full house", "TD TC TH 7C 7D", RankSequence{10, 10, 10, 7, 7}},
		{"unsorted input", "2S KD 7H AC 9C", RankSequence{14, 13, 9, 7, 2}},
		{"wheel plays ace low", "AS 2D 3C 4H 5S", RankSequence{5, 4, 3, 2, 1}},
		{"wheel in any order", "3C 5S AS 4H 2D", RankSequence{5, 4, 3, 2, 1}},
		{"ace with six stays high", "AS 2D 3C 4H 6S", RankSequence{14, 6, 4, 3, 2}},
		{"broadway keeps ace high", "TS JD QC KH AS", RankSequence{14, 13, 12, 11, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ranks(MustParseHand(tt.hand)))
		})
	}
}

func TestIsStraight(t *testing.T) {
	t.Parallel()

	assert.True(t, IsStraight(RankSequence{10, 9, 8, 7, 6}))
	assert.True(t, IsStraight(RankSequence{14, 13, 12, 11, 10}))
	assert.True(t, IsStraight(RankSequence{5, 4, 3, 2, 1}), "normalized wheel")
	assert.False(t, IsStraight(RankSequence{14, 5, 4, 3, 2}), "raw wheel")
	assert.False(t, IsStraight(RankSequence{10, 9, 8, 7, 5}))
	assert.False(t, IsStraight(RankSequence{9, 9, 8, 7, 6}))
	assert.False(t, IsStraight(RankSequence{14, 13, 12, 11, 9}))
}

func TestIsFlush(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFlush(MustParseHand("2H 7H 9H JH KH")))
	assert.True(t, IsFlush(MustParseHand("6C 7C 8C 9C TC")))
	assert.False(t, IsFlush(MustParseHand("2H 7H 9H JH KS")))
	assert.False(t, IsFlush(MustParseHand("2S 7H 9H JH KH")))
	assert.False(t, IsFlush(MustParseHand("TD TC TH 7C 7D")))
}

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		seq    RankSequence
		want   Rank
		wantOK bool
	}{
		{"quads", 4, RankSequence{9, 9, 9, 9, 7}, 9, true},
		{"quads kicker", 1, RankSequence{9, 9, 9, 9, 7}, 7, true},
		{"full house trips", 3, RankSequence{10, 10, 10, 7, 7}, 10, true},
		{"full house pair", 2, RankSequence{10, 10, 10, 7, 7}, 7, true},
		{"highest pair first", 2, RankSequence{13, 13, 8, 3, 3}, 13, true},
		{"highest single first", 1, RankSequence{11, 11, 9, 4, 2}, 9, true},
		{"trips are not a pair", 2, RankSequence{12, 12, 12, 4, 2}, NoRank, false},
		{"quads are not trips", 3, RankSequence{9, 9, 9, 9, 7}, NoRank, false},
		{"no pair", 2, RankSequence{14, 12, 9, 5, 3}, NoRank, false},
		{"no singles", 1, RankSequence{10, 10, 10, 7, 7}, NoRank, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Kind(tt.n, tt.seq)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTwoPairRanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seq      RankSequence
		wantHigh Rank
		wantLow  Rank
		wantOK   bool
	}{
		{"two pair low kicker", RankSequence{13, 13, 8, 3, 3}, 13, 3, true},
		{"two pair high kicker", RankSequence{14, 9, 9, 4, 4}, 9, 4, true},
		{"two pair middle kicker", RankSequence{12, 12, 7, 5, 5}, 12, 5, true},
		{"one pair", RankSequence{11, 11, 9, 4, 2}, NoRank, NoRank, false},
		{"full house", RankSequence{10, 10, 10, 7, 7}, NoRank, NoRank, false},
		{"four of a kind", RankSequence{9, 9, 9, 9, 7}, NoRank, NoRank, false},
		{"high card", RankSequence{14, 12, 9, 5, 3}, NoRank, NoRank, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			high, low, ok := TwoPairRanks(tt.seq)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHigh, high)
			assert.Equal(t, tt.wantLow, low)
		})
	}
}
