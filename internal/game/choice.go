package game

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ExitToken ends the session without a reveal.
	ExitToken = "0"
	// HelpToken prints the outcome matrix and ends the session.
	HelpToken = "?"
)

type choiceKind int

const (
	choiceMove choiceKind = iota
	choiceExit
	choiceHelp
)

type choice struct {
	kind  choiceKind
	index int // zero-based, only for choiceMove
}

// ChoiceError is a line that is neither a menu number nor a token.
type ChoiceError struct {
	Input string
	Max   int
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("invalid move %q: expected 1-%d, %s or %s", e.Input, e.Max, ExitToken, HelpToken)
}

// parseChoice turns a line of input into a menu choice for n moves.
func parseChoice(line string, n int) (choice, error) {
	input := strings.TrimSpace(line)
	switch input {
	case HelpToken:
		return choice{kind: choiceHelp}, nil
	case ExitToken:
		return choice{kind: choiceExit}, nil
	}

	num, err := strconv.Atoi(input)
	if err != nil || num < 1 || num > n {
		return choice{}, &ChoiceError{Input: input, Max: n}
	}
	return choice{kind: choiceMove, index: num - 1}, nil
}
