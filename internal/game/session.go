package game

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fairmove/internal/commit"
	"github.com/lox/fairmove/internal/display"
	"github.com/lox/fairmove/internal/prompt"
	"github.com/lox/fairmove/internal/randutil"
	"github.com/lox/fairmove/internal/rules"
	"github.com/lox/fairmove/internal/sessionid"
)

// DefaultPrompt is shown when asking for the human's move.
const DefaultPrompt = "Enter your move: "

// Options configures a Session. Zero values select production defaults.
type Options struct {
	// Entropy feeds key generation and, when Rand is nil, seeds the move
	// selector. Defaults to crypto/rand.
	Entropy io.Reader
	// Rand picks the computer's move.
	Rand randutil.Source
	// Clock stamps the start and end of the session.
	Clock quartz.Clock
	// Logger receives diagnostics; it never sees the key before the reveal.
	Logger *log.Logger
	// SessionID names the session in the banner and logs.
	SessionID string
	Prompt    string
}

// Result describes how a session ended.
type Result struct {
	SessionID string
	State     State

	Computer int
	// Human is -1 unless the round was resolved.
	Human   int
	Outcome rules.Outcome

	Digest string
	// Key is empty unless the round was resolved.
	Key commit.Key

	StartedAt  time.Time
	FinishedAt time.Time
}

// Session plays a single committed round.
type Session struct {
	moves   rules.MoveSet
	input   prompt.LineReader
	console *display.Console
	entropy io.Reader
	rng     randutil.Source
	clock   quartz.Clock
	logger  *log.Logger
	id      string
	prompt  string
	state   State
}

// NewSession prepares a round over moves. The session owns input and closes
// it when Run returns.
func NewSession(moves rules.MoveSet, input prompt.LineReader, console *display.Console, opts Options) (*Session, error) {
	s := &Session{
		moves:   moves,
		input:   input,
		console: console,
		entropy: opts.Entropy,
		rng:     opts.Rand,
		clock:   opts.Clock,
		logger:  opts.Logger,
		id:      opts.SessionID,
		prompt:  opts.Prompt,
		state:   StateStart,
	}

	if s.entropy == nil {
		s.entropy = rand.Reader
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.id != "" {
		if err := sessionid.Validate(s.id); err != nil {
			return nil, fmt.Errorf("session ID %q: %w", s.id, err)
		}
	}
	if s.rng == nil {
		rng, err := randutil.NewSecure(s.entropy)
		if err != nil {
			return nil, err
		}
		s.rng = rng
	}
	s.logger = s.logger.WithPrefix("session")
	if s.id != "" {
		s.logger = s.logger.With("session", s.id)
	}

	return s, nil
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) transition(to State) {
	s.logger.Debug("State change", "from", s.state, "to", to)
	s.state = to
}

// Run plays the round until a terminal state. The computer's move and its
// commitment are fixed before any input is read, and the key is revealed
// only after a valid move has been entered.
func (s *Session) Run(ctx context.Context) (res Result, err error) {
	if s.state.Terminal() {
		return Result{}, fmt.Errorf("session already finished in state %s", s.state)
	}

	res = Result{
		SessionID: s.id,
		Human:     -1,
		StartedAt: s.clock.Now(),
	}
	defer func() {
		if cerr := s.input.Close(); cerr != nil {
			s.logger.Warn("Failed to close input", "error", cerr)
		}
		res.State = s.state
		res.FinishedAt = s.clock.Now()
		s.logger.Info("Session finished", "state", s.state, "elapsed", res.FinishedAt.Sub(res.StartedAt))
	}()

	n := s.moves.Len()
	res.Computer = s.rng.IntN(n)
	c, err := commit.Commit(s.entropy, s.moves.Name(res.Computer))
	if err != nil {
		s.logger.Error("Failed to commit to move", "error", err)
		s.console.Failure("Could not obtain secure randomness, so the game was stopped.")
		s.transition(StateAborted)
		return res, fmt.Errorf("committing to computer move: %w", err)
	}
	res.Digest = c.Digest()

	if s.id != "" {
		s.console.Banner(s.id)
	}
	s.console.Commitment(res.Digest)
	s.transition(StateCommitmentShown)

	s.console.Menu(s.moves, ExitToken, HelpToken)
	s.transition(StateAwaitingHumanMove)

	for {
		if err := ctx.Err(); err != nil {
			s.transition(StateAborted)
			return res, err
		}

		line, err := s.input.ReadLine(s.prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrInterrupted) {
			s.logger.Debug("Input ended", "reason", err)
			s.console.Exiting()
			s.transition(StateAborted)
			return res, nil
		} else if err != nil {
			s.logger.Error("Failed to read move", "error", err)
			s.console.Failure("Could not read your move, so the game was stopped.")
			s.transition(StateAborted)
			return res, fmt.Errorf("reading move: %w", err)
		}

		ch, err := parseChoice(line, n)
		if err != nil {
			s.logger.Debug("Rejected input", "error", err)
			s.console.InvalidMove()
			s.console.Menu(s.moves, ExitToken, HelpToken)
			continue
		}

		switch ch.kind {
		case choiceHelp:
			s.console.HelpTable(s.moves)
			s.transition(StateHelpRequested)
			return res, nil

		case choiceExit:
			s.console.Exiting()
			s.transition(StateAborted)
			return res, nil

		case choiceMove:
			res.Human = ch.index
			res.Outcome = s.moves.Resolve(ch.index, res.Computer)
			s.console.Result(s.moves.Name(ch.index), s.moves.Name(res.Computer), res.Outcome)

			res.Key = c.Reveal()
			s.console.RevealKey(res.Key.String())
			s.logger.Debug("Commitment check",
				"verified", commit.Verify(res.Key, s.moves.Name(res.Computer), res.Digest))
			s.transition(StateResolved)
			return res, nil
		}
	}
}
