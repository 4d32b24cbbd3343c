package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairmove/internal/commit"
	"github.com/lox/fairmove/internal/config"
	"github.com/lox/fairmove/internal/game"
	"github.com/lox/fairmove/internal/prompt"
	"github.com/lox/fairmove/internal/randutil"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	var cli CLI
	opts := append(options(&cli, io.Discard),
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) {}),
	)
	parser, err := kong.New(&cli, opts...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	return &cli, ctx, err
}

func TestParseMoves(t *testing.T) {
	t.Run("moves without a command play a round", func(t *testing.T) {
		cli, _, err := parse(t, "rock", "paper", "scissors")
		require.NoError(t, err)
		assert.Equal(t, []string{"rock", "paper", "scissors"}, cli.Play.Moves)
	})

	t.Run("explicit play command", func(t *testing.T) {
		cli, _, err := parse(t, "play", "rock", "paper", "scissors", "lizard", "spock")
		require.NoError(t, err)
		assert.Len(t, cli.Play.Moves, 5)
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "two moves", args: []string{"rock", "paper"}, want: "at least 3"},
		{name: "even count", args: []string{"a", "b", "c", "d"}, want: "must be odd"},
		{name: "duplicates", args: []string{"rock", "paper", "rock"}, want: "must not repeat"},
		{name: "rules with too few moves", args: []string{"rules", "rock"}, want: "at least 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parse(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "fairmove rock paper scissors", "error should show an example")
		})
	}

	t.Run("no moves", func(t *testing.T) {
		_, _, err := parse(t)
		assert.Error(t, err)
	})
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	input := prompt.NewReader(strings.NewReader("x\n3\n"), &out)

	err := play(context.Background(), []string{"rock", "paper", "scissors"}, input, &out, config.Default(), game.Options{
		Rand:   randutil.New(1),
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "session ")
	assert.Contains(t, text, "HMAC: ")
	assert.Contains(t, text, "Invalid move. Please try again.")
	assert.Contains(t, text, "Your move: scissors")
	assert.Contains(t, text, "HMAC key: ")
	assert.Contains(t, text, "Enter your move: ")
}

func TestPlayDigestVerifiesWithRevealedKey(t *testing.T) {
	var out bytes.Buffer
	input := prompt.NewReader(strings.NewReader("1\n"), &out)

	require.NoError(t, play(context.Background(), []string{"rock", "paper", "scissors"}, input, &out, config.Default(), game.Options{}))

	var digest, key, computer string
	for _, line := range strings.Split(out.String(), "\n") {
		line = strings.TrimPrefix(line, "Enter your move: ")
		switch {
		case strings.HasPrefix(line, "HMAC: "):
			digest = strings.TrimPrefix(line, "HMAC: ")
		case strings.HasPrefix(line, "HMAC key: "):
			key = strings.TrimPrefix(line, "HMAC key: ")
		case strings.HasPrefix(line, "Computer move: "):
			computer = strings.TrimPrefix(line, "Computer move: ")
		}
	}
	require.NotEmpty(t, digest)
	require.NotEmpty(t, key)
	require.NotEmpty(t, computer)

	// What a player would do by hand with the printed values.
	verify := VerifyCmd{Key: key, Move: computer, HMAC: digest}
	var verifyOut bytes.Buffer
	require.NoError(t, verify.Run(missingConfig(t), &verifyOut))
	assert.Contains(t, verifyOut.String(), "Commitment verified")
}

func TestPlayHelp(t *testing.T) {
	var out bytes.Buffer
	input := prompt.NewReader(strings.NewReader("?\n"), &out)

	require.NoError(t, play(context.Background(), []string{"rock", "paper", "scissors"}, input, &out, config.Default(), game.Options{}))
	assert.Contains(t, out.String(), "Moves    rock paper scissors\n")
	assert.NotContains(t, out.String(), "HMAC key:")
}

func TestPlayEntropyFailure(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{})

	for _, opts := range []game.Options{
		// Fails while naming the session.
		{Entropy: iotest.ErrReader(errors.New("getrandom: device on fire")), Rand: randutil.New(1), Logger: logger},
		// Fails while committing to the computer's move.
		{Entropy: iotest.ErrReader(errors.New("getrandom: device on fire")), Rand: randutil.New(1), Logger: logger, SessionID: "01h5n0et5q6mt3v7ms1234abcd"},
		// Fails while seeding move selection.
		{Entropy: iotest.ErrReader(errors.New("getrandom: device on fire")), Logger: logger, SessionID: "01h5n0et5q6mt3v7ms1234abcd"},
	} {
		var out bytes.Buffer
		input := &closeTracker{LineReader: prompt.NewReader(strings.NewReader("1\n"), &out)}

		err := play(context.Background(), []string{"rock", "paper", "scissors"}, input, &out, config.Default(), opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, errNoEntropy)
		assert.Equal(t, "could not obtain secure randomness, so the game was stopped", err.Error())
		assert.NotContains(t, out.String(), "device on fire")
		assert.Contains(t, out.String(), "Could not obtain secure randomness")
		assert.True(t, input.closed)
	}
	assert.Contains(t, logs.String(), "device on fire", "the cause is kept in the log")
}

func TestPlayReadFailure(t *testing.T) {
	var out bytes.Buffer
	input := prompt.NewReader(iotest.ErrReader(errors.New("read /dev/stdin: input/output error")), &out)

	err := play(context.Background(), []string{"rock", "paper", "scissors"}, input, &out, config.Default(), game.Options{Rand: randutil.New(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStopped)
	assert.NotContains(t, err.Error(), "input/output error")
	assert.NotContains(t, out.String(), "input/output error")
}

type closeTracker struct {
	prompt.LineReader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return c.LineReader.Close()
}

func missingConfig(t *testing.T) *Globals {
	return &Globals{Config: filepath.Join(t.TempDir(), "none.hcl")}
}

func TestVerifyCmd(t *testing.T) {
	key := commit.Key("6e0e5a7d9d1d4b3c2a1908f7e6d5c4b3a29180706f5e4d3c2b1a09f8e7d6c5b4")
	digest := commit.Digest(key, "spock")

	t.Run("match", func(t *testing.T) {
		var out bytes.Buffer
		cmd := VerifyCmd{Key: key.String(), Move: "spock", HMAC: digest}
		require.NoError(t, cmd.Run(missingConfig(t), &out))
		assert.Contains(t, out.String(), "Commitment verified")
	})

	t.Run("mismatch", func(t *testing.T) {
		var out bytes.Buffer
		cmd := VerifyCmd{Key: key.String(), Move: "lizard", HMAC: digest}
		err := cmd.Run(missingConfig(t), &out)
		assert.ErrorIs(t, err, errMismatch)
		assert.Contains(t, out.String(), "Commitment mismatch")
	})

	t.Run("flags", func(t *testing.T) {
		cli, _, err := parse(t, "verify", "--key", key.String(), "--move", "spock", "--hmac", digest)
		require.NoError(t, err)
		assert.Equal(t, "spock", cli.Verify.Move)
		assert.Equal(t, digest, cli.Verify.HMAC)
	})
}

func TestRulesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := RulesCmd{Moves: []string{"rock", "paper", "scissors"}}
	require.NoError(t, cmd.Run(missingConfig(t), &out))

	assert.Equal(t, strings.Join([]string{
		"Moves    rock paper scissors",
		"rock     Draw Lose  Win",
		"paper    Win  Draw  Lose",
		"scissors Lose Win   Draw",
		"",
	}, "\n"), out.String())
}
