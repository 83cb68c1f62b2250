// Package poker ranks five-card poker hands and picks the strongest of a set.
//
// # Basic Usage
//
//	sf := poker.MustParseHand("6C 7C 8C 9C TC")
//	fh := poker.MustParseHand("TD TC TH 7C 7D")
//
//	score := poker.Classify(sf) // Straight Flush (10)
//	best, err := poker.SelectBest([]poker.Hand{sf, fh})
//
// # Scores
//
// Classify returns a Score made of a Category and a fixed-width tie-break
// vector. Scores compare by category first and then slot by slot; slots a
// category does not use hold NoRank. The wheel A-2-3-4-5 is scored as a
// five-high straight: Ranks reports it as 5-4-3-2-1.
//
// Ties between hands with equal scores go to the first hand in input order.
// Winners and Standings expose every tied hand for callers that need to
// split.
//
// All functions are pure and safe for concurrent use. SelectBestParallel
// and ClassifyParallel spread classification over an errgroup.
package poker
