package main

import (
	"context"
	"os"
	"slices"

	"github.com/lox/showdown/poker"
)

// BestCmd selects the strongest hand
type BestCmd struct {
	Hands    []string `arg:"" optional:"" help:"Candidate hands, one quoted hand per argument"`
	File     string   `short:"f" help:"Read hands from a file, one per line ('-' for stdin)"`
	Parallel bool     `short:"p" help:"Classify hands concurrently"`
}

func (c *BestCmd) Run(a *app) error {
	hands, err := collectHands(c.Hands, c.File, os.Stdin)
	if err != nil {
		return err
	}

	var best int
	if c.Parallel {
		h, err := poker.SelectBestParallel(context.Background(), hands, a.cfg.Engine.Workers)
		if err != nil {
			return err
		}
		// The first occurrence of the selected hand is the first best index
		best = slices.Index(hands, h)
	} else {
		best, err = poker.BestIndex(hands)
		if err != nil {
			return err
		}
	}

	winners, err := poker.Winners(hands)
	if err != nil {
		return err
	}
	score := poker.Classify(hands[best])
	a.logger.Debug("Selected best hand", "index", best, "candidates", len(hands), "parallel", c.Parallel)

	renderBest(a.out, hands, best, winners, score)
	if a.cfg.Output.Dump {
		renderDump(a.out, []poker.Score{score})
	}
	return nil
}
