package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs/debugui"
	"github.com/plus3/blockfall/tetris"
)

// spawnGameWindow adds an ImGui panel showing the simulation state.
func spawnGameWindow(game *tetris.Game) {
	game.Storage().Spawn(debugui.ImguiItem{
		Render: func() {
			state := game.State()

			imgui.SetNextWindowPosV(imgui.NewVec2(ScreenWidth+10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(280, 260), imgui.CondOnce)

			if imgui.BeginV("Simulation", nil, 0) {
				imgui.Text(fmt.Sprintf("Phase: %s", state.Phase))
				imgui.Text(fmt.Sprintf("Spawn Blocked: %t", state.SpawnBlocked))
				imgui.Text(fmt.Sprintf("Pieces Locked: %d", state.PiecesLocked))
				imgui.Text(fmt.Sprintf("Lines Cleared: %d", state.LinesCleared))
				imgui.Separator()

				if piece, ok := game.ActivePiece(); ok {
					imgui.Text(fmt.Sprintf("Piece: %s rotation %d", piece.Kind, piece.Rotation))
					imgui.Text(fmt.Sprintf("Anchor: (%d, %d)", piece.Anchor.Column, piece.Anchor.Row))
					imgui.Text(fmt.Sprintf("Drop: %.3f / %.3f s", piece.TimeSinceDrop, piece.DropInterval))
				} else {
					imgui.Text("Piece: none")
				}
				imgui.Text(fmt.Sprintf("Next: %v", game.Upcoming(5)))
				imgui.Separator()

				board := game.Board()
				imgui.Text(fmt.Sprintf("Occupied Cells: %d", board.Count()))
				if last := game.LastClear(); !last.Empty() {
					imgui.Text(fmt.Sprintf("Last Clear: rows %v, %d removed", last.Rows, len(last.Removed)))
				}
			}
			imgui.End()
		},
	})
}
