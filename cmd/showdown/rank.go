package main

import (
	"context"
	"os"

	"github.com/lox/showdown/poker"
)

// RankCmd classifies every hand it is given
type RankCmd struct {
	Hands []string `arg:"" optional:"" help:"Hands to rank, one quoted hand per argument (e.g. '6C 7C 8C 9C TC')"`
	File  string   `short:"f" help:"Read hands from a file, one per line ('-' for stdin)"`
}

func (c *RankCmd) Run(a *app) error {
	hands, err := collectHands(c.Hands, c.File, os.Stdin)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return poker.ErrEmptyCollection
	}

	scores, err := poker.ClassifyParallel(context.Background(), hands, a.cfg.Engine.Workers)
	if err != nil {
		return err
	}
	a.logger.Debug("Classified hands", "count", len(hands))

	winners, err := poker.Winners(hands)
	if err != nil {
		return err
	}
	if err := renderTable(a.out, hands, scores, winners); err != nil {
		return err
	}
	if a.cfg.Output.Dump {
		renderDump(a.out, scores)
	}
	return nil
}
