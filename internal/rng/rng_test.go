package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestUniform_StaysInRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(src, 2, 10)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 10.0)
	}
}

func TestIntRange_Inclusive(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := IntRange(src, 10, 20)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
		seen[v] = true
	}
	assert.True(t, seen[10])
	assert.True(t, seen[20])
	assert.Equal(t, 5, IntRange(src, 5, 5))
}

func TestPick(t *testing.T) {
	src := New(3)
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Pick(src, items))
	}
}
