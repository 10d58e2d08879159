package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, 7, Pick(nil, []int{7}), "a single option must not touch the source")

	src := New(1)
	options := []int{1, 3, 5, 7}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		got := Pick(src, options)
		assert.Contains(t, options, got)
		seen[got] = true
	}
	assert.Len(t, seen, len(options))
}

func TestFromSeed(t *testing.T) {
	assert.Equal(t, New(9).IntN(1<<30), FromSeed(9).IntN(1<<30))
	assert.NotNil(t, FromSeed(0))
}
