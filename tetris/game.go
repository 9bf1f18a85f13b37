package tetris

import (
	"context"
	"time"

	"github.com/plus3/blockfall/ecs"
)

// Game owns the storage, scheduler and singletons of one simulation.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	board     *ecs.Singleton[Board]
	state     *ecs.Singleton[SimState]
	generator *ecs.Singleton[Generator]
	controls  *ecs.Singleton[Controls]
	config    *ecs.Singleton[Config]
	lastClear *ecs.Singleton[LineClear]

	pieces *ecs.View[struct {
		ecs.EntityId
		*Piece
	}]
	blocks *ecs.View[struct {
		ecs.EntityId
		*Block
	}]
}

type options struct {
	components []func(*ecs.ComponentRegistry)
	systems    []ecs.System
}

// Option customises a Game.
type Option func(*options)

// WithComponents registers additional component types, for frontends that
// attach their own entities to the game storage.
func WithComponents(register func(*ecs.ComponentRegistry)) Option {
	return func(o *options) {
		o.components = append(o.components, register)
	}
}

// WithSystems appends systems that run after the simulation systems every tick.
func WithSystems(systems ...ecs.System) Option {
	return func(o *options) {
		o.systems = append(o.systems, systems...)
	}
}

// NewGame validates cfg and builds a game polling input. input may be nil.
func NewGame(cfg Config, input Input, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	for _, register := range o.components {
		register(registry)
	}

	storage := ecs.NewStorage(registry)
	g := &Game{
		storage:   storage,
		board:     ecs.NewSingleton[Board](storage),
		state:     ecs.NewSingleton[SimState](storage),
		generator: ecs.NewSingleton(storage, *NewGenerator(cfg.Seed)),
		controls:  ecs.NewSingleton(storage, Controls{Input: input}),
		config:    ecs.NewSingleton(storage, cfg),
		lastClear: ecs.NewSingleton[LineClear](storage),
		pieces: ecs.NewView[struct {
			ecs.EntityId
			*Piece
		}](storage),
		blocks: ecs.NewView[struct {
			ecs.EntityId
			*Block
		}](storage),
	}

	g.scheduler = ecs.NewScheduler(storage)
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&SettleSystem{})
	g.scheduler.Register(&LineClearSystem{})
	g.scheduler.Register(&SpawnSystem{})
	for _, system := range o.systems {
		g.scheduler.Register(system)
	}

	return g, nil
}

// Tick runs every system once with dt seconds of elapsed time.
func (g *Game) Tick(dt float64) {
	g.scheduler.Once(dt)
}

// Run ticks the game every interval until ctx is cancelled.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	g.scheduler.Run(ctx, interval)
}

// Board returns a copy of the occupancy grid.
func (g *Game) Board() Board {
	return *g.board.Get()
}

// ActivePiece returns a copy of the live piece, if any.
func (g *Game) ActivePiece() (Piece, bool) {
	for item := range g.pieces.Values() {
		return *item.Piece, true
	}
	return Piece{}, false
}

// Next returns the kind of the piece that will spawn next.
func (g *Game) Next() Kind {
	return g.generator.Get().Peek()
}

// Upcoming returns up to n upcoming kinds.
func (g *Game) Upcoming(n int) []Kind {
	return g.generator.Get().Upcoming(n)
}

// Phase returns the current simulation phase.
func (g *Game) Phase() Phase {
	return g.state.Get().Phase
}

// State returns a copy of the simulation counters and flags.
func (g *Game) State() SimState {
	return *g.state.Get()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return *g.config.Get()
}

// Blocks returns every placed block keyed by its handle.
func (g *Game) Blocks() map[ecs.EntityId]Block {
	blocks := make(map[ecs.EntityId]Block)
	for item := range g.blocks.Values() {
		blocks[item.EntityId] = *item.Block
	}
	return blocks
}

// LastClear returns the most recent line clear that removed rows.
func (g *Game) LastClear() LineClear {
	return *g.lastClear.Get()
}

// SetInput replaces the input polled by InputSystem.
func (g *Game) SetInput(input Input) {
	g.controls.Get().Input = input
}

// Storage returns the entity storage backing the game.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

// Scheduler returns the scheduler that runs the systems each tick.
func (g *Game) Scheduler() *ecs.Scheduler {
	return g.scheduler
}
