package random

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermIsPermutation(t *testing.T) {
	r := New()
	for _, n := range []int{1, 2, 15} {
		perm := r.Perm(n)
		assert.Len(t, perm, n)

		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v)
		}
	}
}

func TestPermOfNothing(t *testing.T) {
	assert.Empty(t, New().Perm(0))
	assert.Empty(t, New().Perm(-1))
}

func TestStringUsesAlphabet(t *testing.T) {
	s := New().String(32, "AB")
	assert.Len(t, s, 32)
	assert.Empty(t, strings.Trim(s, "AB"))
}

func TestIntnBounds(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	for range 100 {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}
