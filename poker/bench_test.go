package poker

import (
	"context"
	"testing"
)

var benchScore Score

func BenchmarkClassify(b *testing.B) {
	hands := make([]Hand, len(categoryLadder))
	for i, c := range categoryLadder {
		hands[i] = MustParseHand(c.hand)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchScore = Classify(hands[i%len(hands)])
	}
}

func benchmarkHands(n int) []Hand {
	hands := make([]Hand, n)
	for i := range hands {
		hands[i] = MustParseHand(categoryLadder[i%len(categoryLadder)].hand)
	}
	return hands
}

func BenchmarkSelectBest(b *testing.B) {
	hands := benchmarkHands(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SelectBest(hands); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectBestParallel(b *testing.B) {
	hands := benchmarkHands(1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SelectBestParallel(ctx, hands, 8); err != nil {
			b.Fatal(err)
		}
	}
}
