package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// botInput holds each action with a fixed probability, re-rolled every tick.
type botInput struct {
	rng  *rand.Rand
	held map[tetris.Action]bool
}

func newBotInput(seed uint64) *botInput {
	return &botInput{
		rng:  rand.New(rand.NewPCG(seed, seed+1)),
		held: make(map[tetris.Action]bool),
	}
}

func (b *botInput) roll() {
	b.held[tetris.ActionLeft] = b.rng.IntN(4) == 0
	b.held[tetris.ActionRight] = b.rng.IntN(4) == 0
	b.held[tetris.ActionUp] = b.rng.IntN(6) == 0
	b.held[tetris.ActionDown] = b.rng.IntN(3) == 0
}

func (b *botInput) ActionHeld(action tetris.Action) (bool, bool) {
	held, ok := b.held[action]
	return held, ok
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	tick := flag.Duration("tick", time.Second/60, "Simulated time advanced per tick.")
	seed := flag.Uint64("seed", 0, "Piece generator and bot seed (0 picks one at random).")
	speed := flag.Float64("speed", tetris.DefaultConfig().DropSpeed, "Drop speed in rows per second.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	cfg := tetris.DefaultConfig()
	cfg.Seed = *seed
	cfg.DropSpeed = *speed

	bot := newBotInput(*seed)
	game, err := tetris.NewGame(cfg, bot)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Tick:           *tick,
		Seed:           *seed,
		DropSpeed:      *speed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s (seed %d)...\n", *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	dt := tick.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			bot.roll()

			updateStart := time.Now()
			game.Tick(dt)
			report.TickTime.Add(time.Since(updateStart))
			report.TotalTicks++

			if game.State().SpawnBlocked {
				report.BlockedSpawns++
				log.Println("Spawn blocked, stopping early.")
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.TotalTicks) * *tick
	report.TickTime.Finalize()
	report.State = game.State()
	report.LiveEntities = game.Storage().Len()
	report.Scheduler = game.Scheduler().GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
