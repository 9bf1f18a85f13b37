package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/ecs"
	debugui_ebiten "github.com/plus3/blockfall/ecs/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

var kindColors = [tetris.KindCount]color.RGBA{
	tetris.KindI: {179, 229, 252, 255},
	tetris.KindL: {255, 223, 186, 255},
	tetris.KindJ: {186, 225, 255, 255},
	tetris.KindO: {255, 255, 186, 255},
	tetris.KindS: {186, 255, 201, 255},
	tetris.KindZ: {255, 179, 186, 255},
	tetris.KindT: {217, 186, 255, 255},
}

var (
	backgroundColor = color.RGBA{30, 30, 36, 255}
	wellColor       = color.RGBA{45, 45, 54, 255}
	gridColor       = color.RGBA{60, 60, 70, 255}
)

// App implements ebiten.Game around a tetris.Game.
type App struct {
	game  *tetris.Game
	imgui *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if a.imgui != nil {
		a.imgui.Get().BeginFrame()
		defer a.imgui.Get().EndFrame()
	}

	a.game.Tick(1 / float64(ebiten.TPS()))
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	vector.DrawFilledRect(screen, 0, 0, tetris.BoardWidth*CellSize, tetris.BoardHeight*CellSize, wellColor, false)

	for row := range tetris.BoardHeight {
		for column := range tetris.BoardWidth {
			x, y := cellOrigin(tetris.Coord{Column: column, Row: row})
			vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, gridColor, false)
		}
	}

	for _, block := range a.game.Blocks() {
		drawCell(screen, block.Coord, kindColors[block.Kind])
	}

	if piece, ok := a.game.ActivePiece(); ok {
		for _, cell := range piece.OccupiedCells() {
			drawCell(screen, cell, kindColors[piece.Kind])
		}
	}

	a.drawPanel(screen)

	if a.imgui != nil {
		a.imgui.Get().Overlay(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Get().Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}

func (a *App) drawPanel(screen *ebiten.Image) {
	state := a.game.State()
	x := tetris.BoardWidth*CellSize + 16

	ebitenutil.DebugPrintAt(screen, "NEXT", x, 16)
	for i, kind := range a.game.Upcoming(3) {
		ebitenutil.DebugPrintAt(screen, kind.String(), x+i*24, 36)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", state.LinesCleared), x, 72)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", state.PiecesLocked), x, 92)

	if state.SpawnBlocked {
		ebitenutil.DebugPrintAt(screen, "BOARD FULL", x, 128)
	}
}

// cellOrigin returns the top-left screen corner of c. Board rows grow upward,
// screen rows grow downward.
func cellOrigin(c tetris.Coord) (float32, float32) {
	cx, cy := tetris.ScreenPosition(c, CellSize)
	x := cx - CellSize/2
	y := float64(ScreenHeight) - cy - CellSize/2
	return float32(x), float32(y)
}

func drawCell(screen *ebiten.Image, c tetris.Coord, clr color.RGBA) {
	x, y := cellOrigin(c)
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, clr, false)
}
