package rules

// Outcome is the result of one round, seen from the human's side.
type Outcome int

const (
	Draw Outcome = iota
	HumanWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case HumanWins:
		return "human wins"
	case ComputerWins:
		return "computer wins"
	default:
		return "unknown"
	}
}

// Cell renders the outcome for an outcome matrix, where the row move plays
// the human's role.
func (o Outcome) Cell() string {
	switch o {
	case Draw:
		return "Draw"
	case HumanWins:
		return "Win"
	case ComputerWins:
		return "Lose"
	default:
		return "?"
	}
}

// Opposite swaps the roles of the two players.
func (o Outcome) Opposite() Outcome {
	switch o {
	case HumanWins:
		return ComputerWins
	case ComputerWins:
		return HumanWins
	default:
		return o
	}
}
