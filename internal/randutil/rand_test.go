package randutil

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(7), b.IntN(7))
	}
}

func TestNewSecure(t *testing.T) {
	t.Run("covers the whole range", func(t *testing.T) {
		rng, err := NewSecure(rand.Reader)
		require.NoError(t, err)

		seen := make(map[int]int)
		for i := 0; i < 3000; i++ {
			v := rng.IntN(5)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 5)
			seen[v]++
		}
		assert.Len(t, seen, 5)
		for v, count := range seen {
			// Expected 600 each; anything this far off means a biased source.
			assert.Greater(t, count, 400, "value %d under-represented", v)
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		seed := bytes.Repeat([]byte{7}, 32)
		a, err := NewSecure(bytes.NewReader(seed))
		require.NoError(t, err)
		b, err := NewSecure(bytes.NewReader(seed))
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.IntN(1000), b.IntN(1000))
		}
	})

	t.Run("entropy failure", func(t *testing.T) {
		_, err := NewSecure(iotest.ErrReader(errors.New("no entropy")))
		assert.ErrorIs(t, err, ErrEntropy)

		_, err = NewSecure(bytes.NewReader(make([]byte, 8)))
		assert.ErrorIs(t, err, ErrEntropy)
	})
}
