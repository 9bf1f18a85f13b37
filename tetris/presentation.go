package tetris

// ScreenPosition maps a cell to the center of its square in a space where
// each cell is cellSize wide. The row axis grows upward like the board's.
func ScreenPosition(c Coord, cellSize float64) (x, y float64) {
	x = cellSize/2 + float64(c.Column)*cellSize
	y = cellSize/2 + float64(c.Row)*cellSize
	return x, y
}
