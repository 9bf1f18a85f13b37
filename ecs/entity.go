package ecs

import "fmt"

// EntityId encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// Generations start at 1, so the zero EntityId never refers to a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a slot index and generation
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

func (e EntityId) String() string {
	return fmt.Sprintf("%d:%d", e.Index(), e.Generation())
}

// entityTable hands out slot indices and tracks which generation currently owns each slot.
type entityTable struct {
	generations []uint32
	live        []bool
	free        []uint32
	count       int
}

func (t *entityTable) allocate() EntityId {
	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.generations))
		t.generations = append(t.generations, 1)
		t.live = append(t.live, false)
	}

	t.live[index] = true
	t.count++
	return NewEntityId(index, t.generations[index])
}

func (t *entityTable) alive(id EntityId) bool {
	index := id.Index()
	if int(index) >= len(t.generations) {
		return false
	}
	return t.live[index] && t.generations[index] == id.Generation()
}

// release frees the slot and bumps its generation so stale ids stop resolving.
func (t *entityTable) release(id EntityId) bool {
	if !t.alive(id) {
		return false
	}

	index := id.Index()
	t.live[index] = false
	t.generations[index]++
	if t.generations[index] == 0 {
		t.generations[index] = 1
	}
	t.free = append(t.free, index)
	t.count--
	return true
}
