package tetris

import "github.com/plus3/blockfall/ecs"

// Phase is the state of the piece lifecycle.
type Phase int

const (
	NoActivePiece Phase = iota
	Falling
	Locking
)

func (p Phase) String() string {
	switch p {
	case NoActivePiece:
		return "NoActivePiece"
	case Falling:
		return "Falling"
	case Locking:
		return "Locking"
	}
	return "Unknown"
}

// Block is the component on every placed-block entity.
type Block struct {
	Coord Coord
	Kind  Kind
}

// SimState tracks the phase and running totals.
type SimState struct {
	Phase Phase
	// SpawnBlocked is set while the next piece has no room at the spawn anchor.
	SpawnBlocked bool
	LinesCleared int
	PiecesLocked int
}

// Controls carries the input collaborator polled by InputSystem.
type Controls struct {
	Input Input
}

// RegisterComponents registers the tetris component types with r.
func RegisterComponents(r *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Piece](r)
	ecs.RegisterComponent[Block](r)
}
