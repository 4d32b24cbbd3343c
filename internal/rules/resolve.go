package rules

// Resolve decides a round between the human's move and the computer's move,
// both zero-based positions in a set of n moves (n odd).
//
// Moves sit on a circle. A move beats the n/2 moves that precede it and loses
// to the n/2 moves that follow it, so with [rock paper scissors] paper beats
// rock, scissors beats paper and rock beats scissors.
func Resolve(human, computer, n int) Outcome {
	if human == computer {
		return Draw
	}

	d := human - computer
	half := n / 2

	// The computer's move lies within the half circle after the human's.
	if (d < 0 && -d <= half) || (d > 0 && d > half) {
		return ComputerWins
	}
	return HumanWins
}

// Matrix returns every outcome of the move set: row i is the human playing
// move i, column j the computer playing move j.
func Matrix(moves MoveSet) [][]Outcome {
	n := moves.Len()
	matrix := make([][]Outcome, n)
	for i := range matrix {
		matrix[i] = make([]Outcome, n)
		for j := range matrix[i] {
			matrix[i][j] = Resolve(i, j, n)
		}
	}
	return matrix
}
