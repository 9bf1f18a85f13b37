package tetris

import "github.com/plus3/blockfall/ecs"

const (
	BoardWidth  = 10
	BoardHeight = 24
)

// Coord is a board cell. Row 0 is the floor.
type Coord struct {
	Column, Row int
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.Column >= 0 && c.Column < BoardWidth && c.Row >= 0 && c.Row < BoardHeight
}

// Board is the occupancy grid. Each slot is empty (the zero EntityId) or holds
// the handle of the placed block that fills it.
type Board struct {
	slots [BoardHeight][BoardWidth]ecs.EntityId
}

// LineClear describes the outcome of one ClearFullLines pass.
type LineClear struct {
	// Rows lists the cleared row indices, bottom first, as they were before compaction.
	Rows []int
	// Removed holds every handle that sat in a cleared row.
	Removed []ecs.EntityId
	// Moved maps every surviving handle to its coordinate after compaction.
	Moved map[ecs.EntityId]Coord
}

// Empty reports whether the pass cleared nothing.
func (lc LineClear) Empty() bool {
	return len(lc.Rows) == 0
}

// At returns the handle occupying c, if any.
func (b *Board) At(c Coord) (ecs.EntityId, bool) {
	if !c.InBounds() {
		return 0, false
	}
	id := b.slots[c.Row][c.Column]
	return id, id != 0
}

// Occupied reports whether c holds a block. Out-of-bounds cells are not occupied.
func (b *Board) Occupied(c Coord) bool {
	_, ok := b.At(c)
	return ok
}

// CanPlace reports whether every cell is on the board and empty.
func (b *Board) CanPlace(cells []Coord) bool {
	for _, c := range cells {
		if !c.InBounds() || b.slots[c.Row][c.Column] != 0 {
			return false
		}
	}
	return true
}

// CanSettle reports whether any cell rests on the floor or on an occupied slot.
// One supported cell is enough.
func (b *Board) CanSettle(cells []Coord) bool {
	for _, c := range cells {
		if c.Row == 0 || b.Occupied(Coord{Column: c.Column, Row: c.Row - 1}) {
			return true
		}
	}
	return false
}

// Place marks every cell as occupied by id. Callers validate with CanPlace first;
// cells outside the board are ignored.
func (b *Board) Place(cells []Coord, id ecs.EntityId) {
	for _, c := range cells {
		if c.InBounds() {
			b.slots[c.Row][c.Column] = id
		}
	}
}

// Count returns the number of occupied slots.
func (b *Board) Count() int {
	n := 0
	for row := range b.slots {
		for _, id := range b.slots[row] {
			if id != 0 {
				n++
			}
		}
	}
	return n
}

// RowFull reports whether all slots of row are occupied.
func (b *Board) RowFull(row int) bool {
	for _, id := range b.slots[row] {
		if id == 0 {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row in one pass and compacts the remaining
// rows downward, preserving their order. It returns the removed handles and the
// new coordinate of every surviving handle. Without full rows the board is left
// untouched and the result is empty.
func (b *Board) ClearFullLines() LineClear {
	var result LineClear
	for row := 0; row < BoardHeight; row++ {
		if b.RowFull(row) {
			result.Rows = append(result.Rows, row)
		}
	}

	if len(result.Rows) == 0 {
		return result
	}

	var compacted [BoardHeight][BoardWidth]ecs.EntityId
	next := 0
	cleared := 0
	for row := 0; row < BoardHeight; row++ {
		if cleared < len(result.Rows) && result.Rows[cleared] == row {
			cleared++
			for _, id := range b.slots[row] {
				result.Removed = appendUnique(result.Removed, id)
			}
			continue
		}
		compacted[next] = b.slots[row]
		next++
	}
	b.slots = compacted

	result.Moved = make(map[ecs.EntityId]Coord)
	for row := 0; row < next; row++ {
		for column, id := range b.slots[row] {
			if id != 0 {
				result.Moved[id] = Coord{Column: column, Row: row}
			}
		}
	}

	return result
}

func appendUnique(ids []ecs.EntityId, id ecs.EntityId) []ecs.EntityId {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// Reset empties every slot.
func (b *Board) Reset() {
	b.slots = [BoardHeight][BoardWidth]ecs.EntityId{}
}

// Cells returns every occupied coordinate with its handle, bottom row first.
func (b *Board) Cells() map[Coord]ecs.EntityId {
	cells := make(map[Coord]ecs.EntityId)
	for row := range b.slots {
		for column, id := range b.slots[row] {
			if id != 0 {
				cells[Coord{Column: column, Row: row}] = id
			}
		}
	}
	return cells
}
