package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/fairmove/internal/commit"
	"github.com/lox/fairmove/internal/config"
	"github.com/lox/fairmove/internal/display"
	"github.com/lox/fairmove/internal/game"
	"github.com/lox/fairmove/internal/prompt"
	"github.com/lox/fairmove/internal/randutil"
	"github.com/lox/fairmove/internal/rules"
	"github.com/lox/fairmove/internal/sessionid"
)

// PlayCmd plays a single round.
type PlayCmd struct {
	Moves []string `arg:"" name:"move" help:"An odd number (at least 3) of distinct move names, in dominance order"`
}

func (c *PlayCmd) Validate() error {
	return validateMoves(c.Moves)
}

func (c *PlayCmd) Run(globals *Globals, out io.Writer) error {
	cfg, logger, err := globals.setup()
	if err != nil {
		return err
	}

	input, err := prompt.Open(os.Stdin, out)
	if err != nil {
		return err
	}

	return play(context.Background(), c.Moves, input, out, cfg, game.Options{Logger: logger})
}

var (
	errNoEntropy = errors.New("could not obtain secure randomness, so the game was stopped")
	errStopped   = errors.New("the game stopped unexpectedly, run again with --debug for details")
)

// play runs one session over names, reading moves from input. Errors it
// returns are phrased for the player; the underlying cause is logged.
func play(ctx context.Context, names []string, input prompt.LineReader, out io.Writer, cfg *config.Config, opts game.Options) error {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger := opts.Logger
	console := display.NewConsole(out, !cfg.UI.NoColor)

	moves, err := rules.NewMoveSet(names)
	if err != nil {
		closeInput(input, logger)
		return err
	}

	if opts.SessionID == "" {
		entropy := opts.Entropy
		if entropy == nil {
			entropy = rand.Reader
		}
		id, err := sessionid.Generate(entropy)
		if err != nil {
			closeInput(input, logger)
			logger.Error("Failed to generate session ID", "error", err)
			console.Failure("Could not obtain secure randomness, so the game was stopped.")
			return errNoEntropy
		}
		opts.SessionID = id
	}
	if opts.Prompt == "" {
		opts.Prompt = cfg.UI.Prompt
	}

	session, err := game.NewSession(moves, input, console, opts)
	if err != nil {
		closeInput(input, logger)
		logger.Error("Failed to start session", "error", err)
		if errors.Is(err, randutil.ErrEntropy) {
			console.Failure("Could not obtain secure randomness, so the game was stopped.")
			return errNoEntropy
		}
		return errStopped
	}

	res, err := session.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, commit.ErrEntropy):
		logger.Error("Session aborted", "error", err)
		return errNoEntropy
	case err != nil:
		logger.Error("Session aborted", "error", err)
		return errStopped
	}

	logger.Debug("Round complete", "session", res.SessionID, "state", res.State, "outcome", res.Outcome)
	return nil
}

func closeInput(input prompt.LineReader, logger *log.Logger) {
	if err := input.Close(); err != nil {
		logger.Warn("Failed to close input", "error", err)
	}
}

// validateMoves rejects move lists before any game state exists.
func validateMoves(names []string) error {
	if _, err := rules.NewMoveSet(names); err != nil {
		return fmt.Errorf("incorrect arguments: %w. Provide an odd number (at least %d) of non-repeating moves, e.g. fairmove rock paper scissors",
			err, rules.MinMoves)
	}
	return nil
}
