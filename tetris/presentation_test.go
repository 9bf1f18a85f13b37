package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenPosition(t *testing.T) {
	x, y := ScreenPosition(Coord{}, 32)
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 16.0, y)

	x, y = ScreenPosition(Coord{Column: 3, Row: 2}, 32)
	assert.Equal(t, 112.0, x)
	assert.Equal(t, 80.0, y)
}
