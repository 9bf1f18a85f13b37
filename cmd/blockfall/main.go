package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/ecs/debugui"
	debugui_ebiten "github.com/plus3/blockfall/ecs/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize     = 28
	PanelWidth   = 180
	ScreenWidth  = tetris.BoardWidth*CellSize + PanelWidth
	ScreenHeight = tetris.BoardHeight * CellSize
)

func main() {
	seed := flag.Uint64("seed", 0, "Piece generator seed (0 picks one at random).")
	speed := flag.Float64("speed", tetris.DefaultConfig().DropSpeed, "Drop speed in rows per second.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	cfg.Seed = *seed
	cfg.DropSpeed = *speed

	keys := &keyboardInput{}

	var opts []tetris.Option
	if *debug {
		opts = append(opts,
			tetris.WithComponents(debugui.RegisterDebugUIComponents),
			tetris.WithSystems(&debugui.ImguiSystem{}),
		)
	}

	game, err := tetris.NewGame(cfg, keys, opts...)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app := &App{game: game}

	if *debug {
		storage := game.Storage()
		app.imgui = ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend("Blockfall (debug)", ScreenWidth+560, ScreenHeight))
		keys.capture = ecs.NewSingleton(storage, debugui.ImguiInputState{})
		debugui.SpawnDebugUI(storage, game.Scheduler())
		spawnGameWindow(game)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}

	log.Printf("Starting blockfall (seed %d, speed %.1f)\n", cfg.Seed, cfg.DropSpeed)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
