package tetris

// Action names a logical input the simulation polls each tick.
type Action string

const (
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	ActionUp    Action = "up"
	ActionDown  Action = "down"
)

// Input reports whether an action is currently held. ok is false when the
// action is unbound; an unbound action counts as not held.
type Input interface {
	ActionHeld(action Action) (held bool, ok bool)
}

// HeldActions is an Input backed by a set of held actions.
type HeldActions map[Action]bool

func (h HeldActions) ActionHeld(action Action) (bool, bool) {
	held, ok := h[action]
	return held, ok
}

func held(in Input, action Action) bool {
	if in == nil {
		return false
	}
	h, ok := in.ActionHeld(action)
	return ok && h
}
