package tetris

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(i int) ecs.EntityId {
	return ecs.NewEntityId(uint32(i), 1)
}

func fillRow(b *Board, row, first int) {
	for column := range BoardWidth {
		b.Place([]Coord{{Column: column, Row: row}}, handle(first+column))
	}
}

func TestBoardCanPlace(t *testing.T) {
	var b Board
	b.Place([]Coord{{Column: 3, Row: 3}}, handle(1))

	tests := []struct {
		name  string
		cells []Coord
		want  bool
	}{
		{"empty cells", []Coord{{0, 0}, {9, 23}}, true},
		{"negative column", []Coord{{-1, 0}}, false},
		{"column past edge", []Coord{{10, 0}}, false},
		{"negative row", []Coord{{0, -1}}, false},
		{"row past top", []Coord{{0, 24}}, false},
		{"overlap", []Coord{{2, 3}, {3, 3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.CanPlace(tt.cells))
		})
	}
}

func TestBoardPlace(t *testing.T) {
	var b Board
	cells := []Coord{{1, 1}, {2, 1}, {1, 2}}
	require.True(t, b.CanPlace(cells))

	b.Place(cells, handle(7))
	assert.False(t, b.CanPlace(cells))
	for _, c := range cells {
		id, ok := b.At(c)
		assert.True(t, ok)
		assert.Equal(t, handle(7), id)
	}
	assert.Equal(t, 3, b.Count())

	b.Place([]Coord{{-1, 0}, {0, 30}}, handle(8))
	assert.Equal(t, 3, b.Count())
}

func TestBoardCanSettle(t *testing.T) {
	var b Board
	b.Place([]Coord{{Column: 5, Row: 4}}, handle(1))

	assert.True(t, b.CanSettle([]Coord{{0, 0}, {1, 1}}), "a cell on the floor")
	assert.True(t, b.CanSettle([]Coord{{5, 5}, {6, 5}}), "one supported cell is enough")
	assert.False(t, b.CanSettle([]Coord{{6, 5}, {7, 5}}))
	assert.False(t, b.CanSettle(nil))
}

func TestClearFullLinesEmptyBoard(t *testing.T) {
	var b Board
	b.Place([]Coord{{0, 0}, {1, 0}}, handle(1))
	before := b

	result := b.ClearFullLines()
	assert.True(t, result.Empty())
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Moved)
	assert.Equal(t, before, b)
}

func TestClearFullLinesSingleRow(t *testing.T) {
	var b Board
	fillRow(&b, 0, 100)
	b.Place([]Coord{{3, 1}}, handle(1))
	b.Place([]Coord{{3, 2}}, handle(2))

	result := b.ClearFullLines()
	assert.Equal(t, []int{0}, result.Rows)
	assert.Len(t, result.Removed, 10)
	for column := range BoardWidth {
		assert.Contains(t, result.Removed, handle(100+column))
	}
	assert.Equal(t, map[ecs.EntityId]Coord{
		handle(1): {3, 0},
		handle(2): {3, 1},
	}, result.Moved)

	for column := range BoardWidth {
		assert.False(t, b.Occupied(Coord{column, BoardHeight - 1}))
	}
	assert.Equal(t, 2, b.Count())
}

func TestClearFullLinesNonContiguous(t *testing.T) {
	var b Board
	fillRow(&b, 0, 100)
	b.Place([]Coord{{0, 1}}, handle(1))
	b.Place([]Coord{{1, 1}}, handle(4))
	fillRow(&b, 2, 200)
	b.Place([]Coord{{5, 3}}, handle(2))
	b.Place([]Coord{{9, 7}}, handle(3))

	result := b.ClearFullLines()
	assert.Equal(t, []int{0, 2}, result.Rows)
	assert.Len(t, result.Removed, 20)
	assert.Equal(t, map[ecs.EntityId]Coord{
		handle(1): {0, 0},
		handle(4): {1, 0},
		handle(2): {5, 1},
		handle(3): {9, 5},
	}, result.Moved)

	id, ok := b.At(Coord{0, 0})
	assert.True(t, ok)
	assert.Equal(t, handle(1), id)
	assert.False(t, b.Occupied(Coord{5, 3}))
	assert.True(t, b.Occupied(Coord{5, 1}))
	assert.Equal(t, 4, b.Count())
}

func TestClearFullLinesWholeBoard(t *testing.T) {
	var b Board
	for row := range BoardHeight {
		fillRow(&b, row, row*BoardWidth+1)
	}

	result := b.ClearFullLines()
	assert.Len(t, result.Rows, BoardHeight)
	assert.Len(t, result.Removed, BoardWidth*BoardHeight)
	assert.Empty(t, result.Moved)
	assert.Zero(t, b.Count())
}
