package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the console
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Digest  lipgloss.Style
	Key     lipgloss.Style
	Move    lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Draw    lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds the console styles on r. With color disabled every style
// renders plain text.
func NewStyles(r *lipgloss.Renderer, color bool) Styles {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Title:   r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Digest:  r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Key:     r.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		Move:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Header:  r.NewStyle().Bold(true),
		Win:     r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Lose:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Draw:    r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
	}
}
