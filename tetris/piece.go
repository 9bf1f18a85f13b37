package tetris

import "math"

// Piece is the live falling piece. Exactly one entity carries it while the
// simulation is in the Falling phase.
type Piece struct {
	Kind      Kind
	Rotations Shape
	Rotation  int
	Anchor    Coord

	// Drop timing, in seconds.
	TimeSinceDrop    float64
	BaseDropInterval float64
	DropInterval     float64
}

// NewPiece creates a piece of kind k at anchor that drops dropSpeed cells per second.
func NewPiece(k Kind, anchor Coord, dropSpeed float64) Piece {
	interval := 1 / dropSpeed
	return Piece{
		Kind:             k,
		Rotations:        ShapeOf(k),
		Anchor:           anchor,
		BaseDropInterval: interval,
		DropInterval:     interval,
	}
}

// OccupiedCells returns the four absolute cells of the current rotation state.
func (p *Piece) OccupiedCells() []Coord {
	return p.cellsAt(p.Anchor, p.Rotation)
}

func (p *Piece) cellsAt(anchor Coord, rotation int) []Coord {
	state := p.Rotations[rotation]
	cells := make([]Coord, len(state))
	for i, off := range state {
		cells[i] = Coord{Column: anchor.Column + off.DX, Row: anchor.Row + off.DY}
	}
	return cells
}

// AttemptRotate steps to the previous rotation state. A rotation whose cells do
// not fit on b is rejected and leaves the piece unchanged.
func (p *Piece) AttemptRotate(b *Board) bool {
	n := len(p.Rotations)
	next := (p.Rotation - 1 + n) % n
	if !b.CanPlace(p.cellsAt(p.Anchor, next)) {
		return false
	}
	p.Rotation = next
	return true
}

// AttemptMove shifts the anchor by deltaColumn, clamped to the board columns.
// A move whose cells do not fit on b is rejected and leaves the piece unchanged.
func (p *Piece) AttemptMove(b *Board, deltaColumn int) bool {
	anchor := p.Anchor
	anchor.Column = min(max(anchor.Column+deltaColumn, 0), BoardWidth-1)
	if anchor == p.Anchor || !b.CanPlace(p.cellsAt(anchor, p.Rotation)) {
		return false
	}
	p.Anchor = anchor
	return true
}

// StepDown lowers the anchor one row unless it already sits on the floor.
// Collisions with placed blocks are left to the settle check.
func (p *Piece) StepDown() {
	if p.Anchor.Row > 0 {
		p.Anchor.Row--
	}
}

// Fall accumulates dt and steps down once when the drop interval elapses.
// The remainder carries into the next interval.
func (p *Piece) Fall(dt float64) bool {
	p.TimeSinceDrop += dt
	if p.TimeSinceDrop < p.DropInterval {
		return false
	}
	p.StepDown()
	p.TimeSinceDrop = math.Mod(p.TimeSinceDrop, p.DropInterval)
	return true
}

// SetSoftDrop switches between the base interval and factor times the base interval.
func (p *Piece) SetSoftDrop(held bool, factor float64) {
	if held {
		p.DropInterval = p.BaseDropInterval * factor
	} else {
		p.DropInterval = p.BaseDropInterval
	}
}
