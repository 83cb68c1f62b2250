package poker

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// SelectBest returns the strongest hand. When several hands share the best
// score the first one in input order wins.
func SelectBest(hands []Hand) (Hand, error) {
	i, err := BestIndex(hands)
	if err != nil {
		return Hand{}, err
	}
	return hands[i], nil
}

// BestIndex returns the index of the hand SelectBest would pick
func BestIndex(hands []Hand) (int, error) {
	if len(hands) == 0 {
		return -1, ErrEmptyCollection
	}
	return bestOf(classifyAll(hands)), nil
}

// Winners returns the indices of every hand tied for the best score,
// in input order.
func Winners(hands []Hand) ([]int, error) {
	if len(hands) == 0 {
		return nil, ErrEmptyCollection
	}
	return winnersOf(classifyAll(hands)), nil
}

// Standing is a hand's position in a showdown
type Standing struct {
	Index int // position in the input
	Hand  Hand
	Score Score
	Place int // 0 for the best score; equal scores share a place
}

// Standings ranks every hand strongest first. Ties keep input order.
func Standings(hands []Hand) ([]Standing, error) {
	if len(hands) == 0 {
		return nil, ErrEmptyCollection
	}

	scores := classifyAll(hands)
	standings := make([]Standing, len(hands))
	for i, h := range hands {
		standings[i] = Standing{Index: i, Hand: h, Score: scores[i]}
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Score.Compare(a.Score)
	})

	for i := 1; i < len(standings); i++ {
		standings[i].Place = standings[i-1].Place
		if standings[i].Score != standings[i-1].Score {
			standings[i].Place++
		}
	}
	return standings, nil
}

// SelectBestParallel is SelectBest with classification spread over up to
// workers goroutines. workers <= 0 uses one goroutine per hand.
func SelectBestParallel(ctx context.Context, hands []Hand, workers int) (Hand, error) {
	if len(hands) == 0 {
		return Hand{}, ErrEmptyCollection
	}

	scores, err := ClassifyParallel(ctx, hands, workers)
	if err != nil {
		return Hand{}, err
	}
	return hands[bestOf(scores)], nil
}

// ClassifyParallel classifies every hand, spreading the work over up to
// workers goroutines. Scores are returned in input order.
func ClassifyParallel(ctx context.Context, hands []Hand, workers int) ([]Score, error) {
	if workers <= 0 || workers > len(hands) {
		workers = len(hands)
	}

	scores := make([]Score, len(hands))
	if len(hands) == 0 {
		return scores, nil
	}

	// Split into contiguous chunks so each worker writes a disjoint range
	chunk := (len(hands) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(hands); start += chunk {
		end := min(start+chunk, len(hands))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("classify hand %d: %w", i, err)
				}
				scores[i] = Classify(hands[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

func classifyAll(hands []Hand) []Score {
	scores := make([]Score, len(hands))
	for i, h := range hands {
		scores[i] = Classify(h)
	}
	return scores
}

// bestOf returns the first index holding the maximal score
func bestOf(scores []Score) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Compare(scores[best]) > 0 {
			best = i
		}
	}
	return best
}

func winnersOf(scores []Score) []int {
	best := scores[bestOf(scores)]
	var winners []int
	for i, s := range scores {
		if s == best {
			winners = append(winners, i)
		}
	}
	return winners
}
