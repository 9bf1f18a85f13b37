package tetris

import "github.com/plus3/blockfall/ecs"

// GravitySystem advances the drop timer of the live piece. A piece already
// resting on support is left for SettleSystem to lock this tick.
type GravitySystem struct {
	Pieces ecs.Query[struct{ *Piece }]
	Board  ecs.Singleton[Board]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	if board == nil {
		return
	}

	for item := range s.Pieces.Values() {
		if board.CanSettle(item.Piece.OccupiedCells()) {
			continue
		}
		item.Piece.Fall(frame.DeltaTime)
	}
}

// InputSystem applies held actions to the live piece. Lateral moves and
// rotations each fire on press and then repeat once their cooldown runs out;
// releasing the keys clears the cooldown. Holding "down" enables soft drop.
type InputSystem struct {
	Pieces   ecs.Query[struct{ *Piece }]
	Board    ecs.Singleton[Board]
	Controls ecs.Singleton[Controls]
	Config   ecs.Singleton[Config]

	moveCooldown   float64
	rotateCooldown float64
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	cfg := s.Config.Get()
	if board == nil || cfg == nil {
		return
	}

	var in Input
	if controls := s.Controls.Get(); controls != nil {
		in = controls.Input
	}

	s.moveCooldown = max(0, s.moveCooldown-frame.DeltaTime)
	s.rotateCooldown = max(0, s.rotateCooldown-frame.DeltaTime)

	left, right := held(in, ActionLeft), held(in, ActionRight)
	delta := 0
	if left {
		delta--
	}
	if right {
		delta++
	}
	if !left && !right {
		s.moveCooldown = 0
	}

	rotate := held(in, ActionUp)
	if !rotate {
		s.rotateCooldown = 0
	}
	softDrop := held(in, ActionDown)

	_, item, ok := s.Pieces.First()
	if !ok {
		return
	}
	piece := item.Piece

	if delta != 0 && s.moveCooldown == 0 {
		piece.AttemptMove(board, delta)
		s.moveCooldown = cfg.MoveRepeat
	}

	if rotate && s.rotateCooldown == 0 {
		piece.AttemptRotate(board)
		s.rotateCooldown = cfg.RotateRepeat
	}

	piece.SetSoftDrop(softDrop, cfg.SoftDropFactor)
}

// SettleSystem locks a landed piece: every cell becomes a Block entity whose
// handle is written into the board, and the piece entity is retired.
type SettleSystem struct {
	Pieces ecs.Query[struct {
		ecs.EntityId
		*Piece
	}]
	Board ecs.Singleton[Board]
	State ecs.Singleton[SimState]
}

func (s *SettleSystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	state := s.State.Get()
	if board == nil || state == nil {
		return
	}

	for item := range s.Pieces.Values() {
		cells := item.Piece.OccupiedCells()
		if !board.CanSettle(cells) {
			continue
		}

		for _, cell := range cells {
			id := frame.Commands.Spawn(Block{Coord: cell, Kind: item.Piece.Kind})
			board.Place([]Coord{cell}, id)
		}

		frame.Commands.Delete(item.EntityId)
		state.Phase = Locking
		state.PiecesLocked++
	}
}

// LineClearSystem clears full rows every tick. Removed blocks are deleted and
// the Block coordinates of the survivors are re-synced once the frame's
// commands have been applied.
type LineClearSystem struct {
	Board     ecs.Singleton[Board]
	State     ecs.Singleton[SimState]
	LastClear ecs.Singleton[LineClear]
}

func (s *LineClearSystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	state := s.State.Get()
	if board == nil || state == nil {
		return
	}

	result := board.ClearFullLines()
	if state.Phase == Locking {
		state.Phase = NoActivePiece
	}
	if result.Empty() {
		return
	}

	for _, id := range result.Removed {
		frame.Commands.Delete(id)
	}

	storage := frame.Storage
	moved := result.Moved
	frame.Commands.Defer(func() {
		for id, coord := range moved {
			if block := ecs.ReadComponent[Block](storage, id); block != nil {
				block.Coord = coord
			}
		}
	})

	state.LinesCleared += len(result.Rows)
	s.LastClear.Set(result)
}

// SpawnSystem deals the next piece when none is live. If the spawn cells are
// taken the spawn is held back and SimState.SpawnBlocked is raised; the
// generator is not advanced.
type SpawnSystem struct {
	Board     ecs.Singleton[Board]
	State     ecs.Singleton[SimState]
	Generator ecs.Singleton[Generator]
	Config    ecs.Singleton[Config]
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	board := s.Board.Get()
	state := s.State.Get()
	gen := s.Generator.Get()
	cfg := s.Config.Get()
	if board == nil || state == nil || gen == nil || cfg == nil {
		return
	}

	if state.Phase != NoActivePiece {
		return
	}

	probe := NewPiece(gen.Peek(), cfg.SpawnAnchor, cfg.DropSpeed)
	if !board.CanPlace(probe.OccupiedCells()) {
		state.SpawnBlocked = true
		return
	}

	state.SpawnBlocked = false
	frame.Commands.Spawn(gen.Advance(cfg.SpawnAnchor, cfg.DropSpeed))
	state.Phase = Falling
}
