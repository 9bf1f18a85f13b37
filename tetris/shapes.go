package tetris

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindI Kind = iota
	KindL
	KindJ
	KindO
	KindS
	KindZ
	KindT

	KindCount = 7
)

// RotationCount is the number of rotation states every shape defines.
const RotationCount = 4

// Offset is a cell position relative to a piece anchor. DY grows upward.
type Offset struct {
	DX, DY int
}

// RotationState is the set of cells a piece covers in one orientation.
type RotationState [4]Offset

// Shape is the ordered list of rotation states of a kind.
type Shape [RotationCount]RotationState

// Every state is bottom-left aligned: the lowest cell has DY == 0 and the
// leftmost cell has DX == 0, so a piece anchored on row 0 always touches the floor.
var shapes = [KindCount]Shape{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindL: {
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindS: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
	},
	KindZ: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindT: {
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
	},
}

// ShapeOf returns the rotation states of k. The result is a copy.
func ShapeOf(k Kind) Shape {
	return shapes[k]
}

// Kinds returns all kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindL, KindJ, KindO, KindS, KindZ, KindT}
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	}
	return "?"
}
