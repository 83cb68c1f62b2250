package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/lox/showdown/poker"
)

const (
	straightFlush = "6C 7C 8C 9C TC"
	fourOfAKind   = "9D 9H 9S 9C 7D"
	fullHouse     = "TD TC TH 7C 7D"
	wheel         = "AH 2D 3C 4S 5H"
)

type selfTestCase struct {
	name  string
	check func() error
}

func expectRanks(hand string, want ...poker.Rank) func() error {
	return func() error {
		got := poker.Ranks(poker.MustParseHand(hand))
		if !slices.Equal(got[:], want) {
			return fmt.Errorf("ranks = %v, want %v", got, want)
		}
		return nil
	}
}

func expectScore(hand string, category poker.Category, payload ...poker.Rank) func() error {
	return func() error {
		got := poker.Classify(poker.MustParseHand(hand))
		if got.Category != category || !slices.Equal(got.Payload(), payload) {
			return fmt.Errorf("score = %s, want %s %v", got, category, payload)
		}
		return nil
	}
}

func expectBest(want string, hands ...string) func() error {
	return func() error {
		parsed := make([]poker.Hand, len(hands))
		for i, h := range hands {
			parsed[i] = poker.MustParseHand(h)
		}
		expected := poker.MustParseHand(want)

		got, err := poker.SelectBest(parsed)
		if err != nil {
			return err
		}
		if got != expected {
			return fmt.Errorf("best = %s, want %s", got, expected)
		}

		got, err = poker.SelectBestParallel(context.Background(), parsed, 0)
		if err != nil {
			return err
		}
		if got != expected {
			return fmt.Errorf("parallel best = %s, want %s", got, expected)
		}
		return nil
	}
}

func selfTestCases() []selfTestCase {
	manyFullHouses := []string{straightFlush}
	for range 99 {
		manyFullHouses = append(manyFullHouses, fullHouse)
	}

	return []selfTestCase{
		{"ranks of straight flush", expectRanks(straightFlush, 10, 9, 8, 7, 6)},
		{"ranks of four of a kind", expectRanks(fourOfAKind, 9, 9, 9, 9, 7)},
		{"ranks of full house", expectRanks(fullHouse, 10, 10, 10, 7, 7)},
		{"ranks of wheel", expectRanks(wheel, 5, 4, 3, 2, 1)},
		{"score of straight flush", expectScore(straightFlush, poker.StraightFlush, 10)},
		{"score of four of a kind", expectScore(fourOfAKind, poker.FourOfAKind, 9, 7)},
		{"score of full house", expectScore(fullHouse, poker.FullHouse, 10, 7)},
		{"score of wheel", expectScore(wheel, poker.Straight, 5)},
		{"best of three", expectBest(straightFlush, straightFlush, fourOfAKind, fullHouse)},
		{"quads beat full house", expectBest(fourOfAKind, fourOfAKind, fullHouse)},
		{"identical hands", expectBest(fullHouse, fullHouse, fullHouse)},
		{"single hand", expectBest(straightFlush, straightFlush)},
		{"one hundred hands", expectBest(straightFlush, manyFullHouses...)},
	}
}

// SelftestCmd runs the reference cases at runtime
type SelftestCmd struct{}

func (c *SelftestCmd) Run(a *app) error {
	return runSelfTest(a.out, selfTestCases())
}

func runSelfTest(w io.Writer, cases []selfTestCase) error {
	failed := 0
	for _, tc := range cases {
		if err := tc.check(); err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", failStyle.Render("FAIL"), tc.name, err)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", winStyle.Render("PASS"), tc.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d self-test cases failed", failed, len(cases))
	}
	fmt.Fprintf(w, "%d cases passed\n", len(cases))
	return nil
}
