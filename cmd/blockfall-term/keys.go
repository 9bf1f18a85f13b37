package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a tetris.Action
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: tetris.ActionLeft},
	{r: 'h', a: tetris.ActionLeft},
	{r: 'a', a: tetris.ActionLeft},
	{k: tcell.KeyRight, a: tetris.ActionRight},
	{r: 'l', a: tetris.ActionRight},
	{r: 'd', a: tetris.ActionRight},
	{k: tcell.KeyUp, a: tetris.ActionUp},
	{r: 'k', a: tetris.ActionUp},
	{r: 'w', a: tetris.ActionUp},
	{k: tcell.KeyDown, a: tetris.ActionDown},
	{r: 'j', a: tetris.ActionDown},
	{r: 's', a: tetris.ActionDown},
}

func actionFor(ev *tcell.EventKey) (tetris.Action, bool) {
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == ev.Key() {
			return bind.a, true
		}
		if bind.r != 0 && ev.Key() == tcell.KeyRune && bind.r == ev.Rune() {
			return bind.a, true
		}
	}
	return "", false
}

// heldKeys turns key press events into held actions. Terminals report no key
// releases, so an action stays held for holdWindow after its last press or
// auto-repeat event.
type heldKeys struct {
	mu         sync.Mutex
	lastPress  map[tetris.Action]time.Time
	holdWindow time.Duration
	now        func() time.Time
}

func newHeldKeys(holdWindow time.Duration) *heldKeys {
	return &heldKeys{
		lastPress:  make(map[tetris.Action]time.Time),
		holdWindow: holdWindow,
		now:        time.Now,
	}
}

func (h *heldKeys) press(action tetris.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastPress[action] = h.now()
}

func (h *heldKeys) ActionHeld(action tetris.Action) (bool, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	last, ok := h.lastPress[action]
	if !ok {
		return false, true
	}
	return h.now().Sub(last) < h.holdWindow, true
}
