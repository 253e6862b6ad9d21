package keyid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetSize(t *testing.T) {
	// The pool has to stay big enough to keep per-character entropy high.
	require.GreaterOrEqual(t, AlphabetSize(), 700)
}

func inAlphabet(r rune) bool {
	for _, cr := range includeRanges {
		if r >= cr.lo && r <= cr.hi {
			return true
		}
	}
	return false
}

func TestNew_LengthAndCharset(t *testing.T) {
	id := New(64)
	runes := []rune(id)
	assert.Len(t, runes, 64)
	for _, r := range runes {
		if !inAlphabet(r) {
			t.Fatalf("rune %q (U+%04X) outside the configured ranges", r, r)
		}
	}
}

func TestNew_EnforcesMinimumLength(t *testing.T) {
	for _, n := range []int{0, 1, 49} {
		id := New(n)
		assert.Len(t, []rune(id), MinLength)
	}
}

func TestNew_TwoDrawsDiffer(t *testing.T) {
	a := New(50)
	b := New(50)
	if a == b {
		t.Logf("warning: two 50-character draws are identical; extremely unlikely")
	}
}
