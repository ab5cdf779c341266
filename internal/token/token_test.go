package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Format(t *testing.T) {
	g := NewGenerator()

	format := regexp.MustCompile(`^[A-Z0-9]{20}$`)
	for i := 0; i < 100; i++ {
		tok, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, format, tok)
	}
}

func TestGenerator_NoImmediateCollisions(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		tok, err := g.Generate()
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup, "duplicate token generated: %s", tok)
		seen[tok] = struct{}{}
	}
}

func TestGenerator_UniformCharacterDistribution(t *testing.T) {
	g := NewGenerator()

	counts := make(map[byte]int, len(alphabet))
	const tokens = 10000
	for i := 0; i < tokens; i++ {
		tok, err := g.Generate()
		require.NoError(t, err)
		for j := 0; j < len(tok); j++ {
			counts[tok[j]]++
		}
	}

	// 200k draws over 36 characters: every character should sit close
	// to the uniform expectation. A modulo-biased draw overweights the
	// first characters of the alphabet by ~12.5%.
	expected := float64(tokens*length) / float64(len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		got := float64(counts[alphabet[i]])
		assert.InDelta(t, expected, got, expected*0.10,
			"character %c drawn %v times, expected ~%v", alphabet[i], got, expected)
	}
}
