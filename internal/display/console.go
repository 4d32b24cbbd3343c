// Package display renders the game transcript on a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fairmove/internal/rules"
)

// Console writes game messages to w.
type Console struct {
	w      io.Writer
	styles Styles
}

// NewConsole creates a console on w. Color is only emitted when requested
// and w is a terminal that supports it.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w), color),
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Banner introduces a session.
func (c *Console) Banner(sessionID string) {
	c.println(c.styles.Title.Render(" fairmove "), c.styles.Info.Render("session "+sessionID))
}

// Commitment shows the digest the computer is bound to.
func (c *Console) Commitment(digest string) {
	c.println(c.styles.Label.Render("HMAC:"), c.styles.Digest.Render(digest))
}

// Menu lists the numbered moves and the exit and help tokens.
func (c *Console) Menu(moves rules.MoveSet, exitToken, helpToken string) {
	c.println("Available moves:")
	for i := 0; i < moves.Len(); i++ {
		c.println(fmt.Sprintf("%d - %s", i+1, moves.Name(i)))
	}
	c.println(exitToken + " - exit")
	c.println(helpToken + " - help")
}

// InvalidMove reports input that is not a menu entry.
func (c *Console) InvalidMove() {
	c.println(c.styles.Error.Render("Invalid move. Please try again."))
}

// Exiting acknowledges the exit token.
func (c *Console) Exiting() {
	c.println(c.styles.Info.Render("Exiting the game."))
}

// Result reports both moves and the outcome.
func (c *Console) Result(human, computer string, outcome rules.Outcome) {
	c.println(c.styles.Label.Render("Your move:"), c.styles.Move.Render(human))
	c.println(c.styles.Label.Render("Computer move:"), c.styles.Move.Render(computer))

	style := c.styles.Draw
	switch outcome {
	case rules.HumanWins:
		style = c.styles.Win
	case rules.ComputerWins:
		style = c.styles.Lose
	}
	c.println(c.styles.Label.Render("Result:"), style.Bold(true).Render(outcome.String()))
}

// RevealKey prints the secret key so the digest can be recomputed.
func (c *Console) RevealKey(key string) {
	c.println(c.styles.Label.Render("HMAC key:"), c.styles.Key.Render(key))
}

// Verification reports whether a recomputed digest matched.
func (c *Console) Verification(ok bool) {
	if ok {
		c.println(c.styles.Success.Render("Commitment verified: the digest matches the revealed move and key."))
		return
	}
	c.println(c.styles.Error.Render("Commitment mismatch: the digest does not match the move and key."))
}

// Failure reports a fatal problem in user terms.
func (c *Console) Failure(message string) {
	c.println(c.styles.Error.Render(message))
}

// HelpTable prints the outcome matrix of moves.
func (c *Console) HelpTable(moves rules.MoveSet) {
	fmt.Fprint(c.w, c.RenderTable(moves))
}

// RenderTable lays out the outcome matrix: a header row of "Moves" and the
// move names, then one row per move with Win/Lose/Draw from that move's side.
// Every column is padded to its widest cell.
func (c *Console) RenderTable(moves rules.MoveSet) string {
	matrix := rules.Matrix(moves)
	n := moves.Len()

	rows := make([][]string, 0, n+1)
	rows = append(rows, append([]string{"Moves"}, moves.Names()...))
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, moves.Name(i))
		for j := 0; j < n; j++ {
			row = append(row, matrix[i][j].Cell())
		}
		rows = append(rows, row)
	}

	widths := make([]int, n+1)
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for col, cell := range row {
			style := c.styles.Header
			if r > 0 && col > 0 {
				style = c.cellStyle(matrix[r-1][col-1])
			}
			cells[col] = style.Render(cell) + strings.Repeat(" ", widths[col]-lipgloss.Width(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Console) cellStyle(o rules.Outcome) lipgloss.Style {
	switch o {
	case rules.HumanWins:
		return c.styles.Win
	case rules.ComputerWins:
		return c.styles.Lose
	default:
		return c.styles.Draw
	}
}
