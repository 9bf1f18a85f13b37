package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorBags(t *testing.T) {
	g := NewGenerator(42)
	anchor := Coord{Column: 4, Row: 21}

	for bag := range 4 {
		var dealt []Kind
		for range KindCount {
			peeked := g.Peek()
			p := g.Advance(anchor, 15)
			assert.Equal(t, peeked, p.Kind, "peek must match the dealt kind")
			dealt = append(dealt, p.Kind)
		}
		assert.ElementsMatch(t, Kinds(), dealt, "bag %d is not a permutation", bag)
	}
}

func TestGeneratorAdvance(t *testing.T) {
	g := NewGenerator(7)
	anchor := Coord{Column: 4, Row: 21}

	p := g.Advance(anchor, 15)
	assert.Equal(t, anchor, p.Anchor)
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, ShapeOf(p.Kind), p.Rotations)
	assert.InDelta(t, 1.0/15, p.BaseDropInterval, 1e-12)
	assert.Equal(t, p.BaseDropInterval, p.DropInterval)
	assert.Zero(t, p.TimeSinceDrop)
}

func TestGeneratorSeeded(t *testing.T) {
	a, b := NewGenerator(99), NewGenerator(99)
	for range 3 * KindCount {
		assert.Equal(t, a.Advance(Coord{}, 1).Kind, b.Advance(Coord{}, 1).Kind)
	}
}

func TestGeneratorUpcoming(t *testing.T) {
	g := NewGenerator(3)
	for range 5 {
		g.Advance(Coord{}, 1)
	}

	// Two kinds left in the current bag plus the prepared next bag.
	upcoming := g.Upcoming(10)
	assert.Len(t, upcoming, 2+KindCount)
	assert.Equal(t, g.Peek(), upcoming[0])
	assert.Equal(t, upcoming[:3], g.Upcoming(3))

	for _, want := range upcoming {
		assert.Equal(t, want, g.Advance(Coord{}, 1).Kind)
	}
}
