package tetris

import (
	"math/rand/v2"
	"time"
)

// Generator deals piece kinds from shuffled bags of all seven kinds. The next
// bag is always drawn in advance, so Peek sees across bag boundaries.
type Generator struct {
	current []Kind
	next    []Kind
	rng     *rand.Rand
}

// NewGenerator creates a generator. A zero seed picks one from the clock.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	g.current = g.bag()
	g.next = g.bag()
	return g
}

func (g *Generator) bag() []Kind {
	kinds := Kinds()
	g.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	return kinds
}

// Peek returns the kind the next Advance will deal.
func (g *Generator) Peek() Kind {
	return g.current[0]
}

// Upcoming returns up to n upcoming kinds in deal order.
func (g *Generator) Upcoming(n int) []Kind {
	out := make([]Kind, 0, n)
	for _, queue := range [][]Kind{g.current, g.next} {
		for _, k := range queue {
			if len(out) == n {
				return out
			}
			out = append(out, k)
		}
	}
	return out
}

// Advance deals the next kind as a new piece at anchor.
func (g *Generator) Advance(anchor Coord, dropSpeed float64) Piece {
	k := g.current[0]
	g.current = g.current[1:]
	if len(g.current) == 0 {
		g.current, g.next = g.next, g.bag()
	}
	return NewPiece(k, anchor, dropSpeed)
}
