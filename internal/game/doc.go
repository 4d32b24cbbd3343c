// Package game runs one round of the committed move game.
//
// A Session walks a fixed sequence of states:
//
//	start -> commitment-shown -> awaiting-human-move -> resolved
//	                                                 -> help-requested
//	                                                 -> aborted
//
// The computer's move is drawn and committed to (see package commit) before
// the menu is shown. Invalid input keeps the session in awaiting-human-move.
// A resolved round prints both moves, the outcome and the secret key.
//
// # Deterministic Testing
//
// Inject the move selector and a scripted reader; key generation still uses
// real entropy:
//
//	input := prompt.NewReader(strings.NewReader("2\n"), &out)
//	s, _ := game.NewSession(moves, input, display.NewConsole(&out, false), game.Options{
//	    Rand: randutil.New(42),
//	})
//	res, err := s.Run(ctx)
package game
