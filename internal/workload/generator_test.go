// internal/workload/generator_test.go
package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Sequence(t *testing.T) {
	t.Run("produces the requested length", func(t *testing.T) {
		gen := New(42)
		seq := gen.Sequence(137)
		assert.Len(t, seq, 137)
	})

	t.Run("draws only from the DNA alphabet", func(t *testing.T) {
		gen := New(42)
		seq := gen.Sequence(2000)
		for _, c := range seq {
			assert.Contains(t, Alphabet, string(c))
		}
	})

	t.Run("uses all four symbols over a long sequence", func(t *testing.T) {
		gen := New(7)
		seq := gen.Sequence(4000)
		for _, sym := range Alphabet {
			assert.True(t, strings.ContainsRune(seq, sym), "missing symbol %c", sym)
		}
	})
}

func TestGenerator_Determinism(t *testing.T) {
	t.Run("same seed yields identical pairs", func(t *testing.T) {
		first1, first2 := New(1234).Pair(500)
		second1, second2 := New(1234).Pair(500)
		assert.Equal(t, first1, second1)
		assert.Equal(t, first2, second2)
	})

	t.Run("different seeds yield different pairs", func(t *testing.T) {
		first, _ := New(1).Pair(500)
		second, _ := New(2).Pair(500)
		assert.NotEqual(t, first, second)
	})

	t.Run("pair halves come from one stream", func(t *testing.T) {
		// The second sequence of a pair must continue the stream, not
		// restart it, or both halves would be identical.
		seq1, seq2 := New(99).Pair(500)
		require.Len(t, seq2, 500)
		assert.NotEqual(t, seq1, seq2)
	})
}

func TestSeed(t *testing.T) {
	t.Run("derives from length and threads", func(t *testing.T) {
		assert.Equal(t, int64(5001), Seed(5, 1))
		assert.Equal(t, int64(5000008), Seed(5000, 8))
	})

	t.Run("distinct grid points get distinct seeds", func(t *testing.T) {
		seen := make(map[int64]bool)
		for _, length := range []int{1000, 2000, 5000} {
			for _, threads := range []int{1, 2, 4, 8} {
				s := Seed(length, threads)
				assert.False(t, seen[s], "seed collision at length=%d threads=%d", length, threads)
				seen[s] = true
			}
		}
	})
}
