package rules

import (
	"errors"
	"fmt"
)

// MinMoves is the smallest playable move set.
const MinMoves = 3

var (
	// ErrInvalidMoves is the parent of every move set validation error.
	ErrInvalidMoves = errors.New("invalid move set")

	ErrTooFewMoves   = fmt.Errorf("%w: at least %d moves are required", ErrInvalidMoves, MinMoves)
	ErrEvenMoves     = fmt.Errorf("%w: the number of moves must be odd", ErrInvalidMoves)
	ErrDuplicateMove = fmt.Errorf("%w: moves must not repeat", ErrInvalidMoves)
)

// MoveSet is an ordered, immutable list of distinct move names. A move's
// position defines its place in the circular dominance order.
type MoveSet struct {
	names []string
}

// NewMoveSet validates names and returns the move set built from them.
// Names are compared exactly, so "Rock" and "rock" are different moves.
func NewMoveSet(names []string) (MoveSet, error) {
	if len(names) < MinMoves {
		return MoveSet{}, fmt.Errorf("%w (got %d)", ErrTooFewMoves, len(names))
	}
	if len(names)%2 == 0 {
		return MoveSet{}, fmt.Errorf("%w (got %d)", ErrEvenMoves, len(names))
	}

	seen := make(map[string]int, len(names))
	for i, name := range names {
		if prev, ok := seen[name]; ok {
			return MoveSet{}, fmt.Errorf("%w: %q appears at positions %d and %d", ErrDuplicateMove, name, prev+1, i+1)
		}
		seen[name] = i
	}

	return MoveSet{names: append([]string(nil), names...)}, nil
}

// Len returns the number of moves.
func (m MoveSet) Len() int {
	return len(m.names)
}

// Name returns the move at zero-based position i.
func (m MoveSet) Name(i int) string {
	return m.names[i]
}

// Names returns a copy of the move names in order.
func (m MoveSet) Names() []string {
	return append([]string(nil), m.names...)
}

// Resolve decides a round between two zero-based positions in this set.
func (m MoveSet) Resolve(human, computer int) Outcome {
	return Resolve(human, computer, len(m.names))
}
