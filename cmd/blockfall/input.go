package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/ecs/debugui"
	"github.com/plus3/blockfall/tetris"
)

var keyBindings = map[tetris.Action][]ebiten.Key{
	tetris.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	tetris.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	tetris.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	tetris.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// keyboardInput polls the ebiten keyboard. Keys are ignored while an ImGui
// widget has keyboard focus.
type keyboardInput struct {
	capture *ecs.Singleton[debugui.ImguiInputState]
}

func (k *keyboardInput) ActionHeld(action tetris.Action) (bool, bool) {
	keys, ok := keyBindings[action]
	if !ok {
		return false, false
	}

	if k.capture != nil {
		if state := k.capture.Get(); state != nil && state.WantCaptureKeyboard {
			return false, true
		}
	}

	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true, true
		}
	}
	return false, true
}
