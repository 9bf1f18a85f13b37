package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var kindStyles = [tetris.KindCount]tcell.Style{
	tetris.KindI: tcell.StyleDefault.Foreground(tcell.ColorAqua),
	tetris.KindL: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	tetris.KindJ: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	tetris.KindO: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	tetris.KindS: tcell.StyleDefault.Foreground(tcell.ColorLime),
	tetris.KindZ: tcell.StyleDefault.Foreground(tcell.ColorRed),
	tetris.KindT: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type Terminal struct {
	screen tcell.Screen
	game   *tetris.Game
	keys   *heldKeys
}

func main() {
	seed := flag.Uint64("seed", 0, "Piece generator seed (0 picks one at random).")
	speed := flag.Float64("speed", 2, "Drop speed in rows per second.")
	holdWindow := flag.Duration("hold", 150*time.Millisecond, "How long a key counts as held after its last press.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	cfg.Seed = *seed
	cfg.DropSpeed = *speed

	keys := newHeldKeys(*holdWindow)
	game, err := tetris.NewGame(cfg, keys)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	term := &Terminal{screen: screen, game: game, keys: keys}
	term.run()
}

func (t *Terminal) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			t.game.Tick(now.Sub(last).Seconds())
			last = now
			t.draw()
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if action, ok := actionFor(ev); ok {
			t.keys.press(action)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Each cell is two columns wide so blocks look square.
func (t *Terminal) setCell(c tetris.Coord, style tcell.Style) {
	x := 1 + c.Column*2
	y := tetris.BoardHeight - c.Row
	t.screen.SetContent(x, y, '█', nil, style)
	t.screen.SetContent(x+1, y, '█', nil, style)
}

func (t *Terminal) draw() {
	t.screen.Clear()

	right := 1 + tetris.BoardWidth*2
	bottom := tetris.BoardHeight + 1
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, tcell.RuneVLine, nil, frameStyle)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, frameStyle)
	}
	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, tcell.RuneHLine, nil, frameStyle)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, frameStyle)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, frameStyle)
	t.screen.SetContent(right, 0, tcell.RuneURCorner, nil, frameStyle)
	t.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, frameStyle)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, frameStyle)

	for _, block := range t.game.Blocks() {
		t.setCell(block.Coord, kindStyles[block.Kind])
	}
	if piece, ok := t.game.ActivePiece(); ok {
		for _, cell := range piece.OccupiedCells() {
			t.setCell(cell, kindStyles[piece.Kind])
		}
	}

	state := t.game.State()
	panel := right + 3
	t.print(panel, 1, fmt.Sprintf("Next:   %v", t.game.Upcoming(3)))
	t.print(panel, 3, fmt.Sprintf("Lines:  %d", state.LinesCleared))
	t.print(panel, 4, fmt.Sprintf("Pieces: %d", state.PiecesLocked))
	if state.SpawnBlocked {
		t.print(panel, 6, "Board full. Press q to quit.")
	}

	t.screen.Show()
}

func (t *Terminal) print(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
