package main

import (
	"errors"
	"io"

	"github.com/lox/fairmove/internal/commit"
	"github.com/lox/fairmove/internal/display"
)

var errMismatch = errors.New("commitment does not match")

// VerifyCmd recomputes a commitment from the revealed key and move.
type VerifyCmd struct {
	Key  string `required:"" help:"The HMAC key revealed after the round"`
	Move string `required:"" help:"The computer's move as revealed"`
	HMAC string `name:"hmac" required:"" help:"The HMAC shown before you chose your move"`
}

func (c *VerifyCmd) Run(globals *Globals, out io.Writer) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}

	ok := commit.Verify(commit.Key(c.Key), c.Move, c.HMAC)
	logger.Debug("Verified commitment", "move", c.Move, "match", ok)

	display.NewConsole(out, !cfg.UI.NoColor).Verification(ok)
	if !ok {
		return errMismatch
	}
	return nil
}
