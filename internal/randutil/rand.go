package randutil

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
)

// ErrEntropy is returned when a secure generator cannot be seeded.
var ErrEntropy = errors.New("secure random source unavailable")

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Source picks a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Tests use it to pin the computer's move; it is not fit for real play.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSecure returns a ChaCha8 generator keyed with 32 bytes read from
// entropy. A short or failing read is an error; there is no weaker fallback.
func NewSecure(entropy io.Reader) (*rand.Rand, error) {
	var seed [32]byte
	if _, err := io.ReadFull(entropy, seed[:]); err != nil {
		return nil, fmt.Errorf("seeding move selection: %w: %w", ErrEntropy, err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
