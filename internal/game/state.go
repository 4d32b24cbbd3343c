package game

// State is a step of a session.
type State int

const (
	StateStart State = iota
	StateCommitmentShown
	StateAwaitingHumanMove
	StateResolved
	StateHelpRequested
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCommitmentShown:
		return "commitment-shown"
	case StateAwaitingHumanMove:
		return "awaiting-human-move"
	case StateResolved:
		return "resolved"
	case StateHelpRequested:
		return "help-requested"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateResolved || s == StateHelpRequested || s == StateAborted
}
