package main

import (
	"io"

	"github.com/lox/fairmove/internal/display"
	"github.com/lox/fairmove/internal/rules"
)

// RulesCmd prints the outcome table without playing.
type RulesCmd struct {
	Moves []string `arg:"" name:"move" help:"An odd number (at least 3) of distinct move names, in dominance order"`
}

func (c *RulesCmd) Validate() error {
	return validateMoves(c.Moves)
}

func (c *RulesCmd) Run(globals *Globals, out io.Writer) error {
	cfg, _, err := globals.setup()
	if err != nil {
		return err
	}

	moves, err := rules.NewMoveSet(c.Moves)
	if err != nil {
		return err
	}

	display.NewConsole(out, !cfg.UI.NoColor).HelpTable(moves)
	return nil
}
