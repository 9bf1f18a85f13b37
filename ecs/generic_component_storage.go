package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{
			index: intmap.New[EntityId, int](genericBlockSize),
		}
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of type T densely in fixed-size blocks.
// Blocks are allocated individually and never copied, so pointers returned by Get
// survive appends.
// Deletion swaps the last component into the freed position.
type genericComponentStorage[T any] struct {
	blocks []*[genericBlockSize]T
	owners []EntityId
	index  *intmap.Map[EntityId, int]
}

func (cs *genericComponentStorage[T]) at(pos int) *T {
	return &cs.blocks[pos/genericBlockSize][pos%genericBlockSize]
}

// Set stores the component for id, replacing any previous value.
func (cs *genericComponentStorage[T]) Set(id EntityId, item any) bool {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return false
	}

	if pos, ok := cs.index.Get(id); ok {
		*cs.at(pos) = concreteItem
		return true
	}

	pos := len(cs.owners)
	if pos/genericBlockSize >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
	}

	*cs.at(pos) = concreteItem
	cs.owners = append(cs.owners, id)
	cs.index.Put(id, pos)
	return true
}

// Get returns a pointer to the component owned by id, or nil.
func (cs *genericComponentStorage[T]) Get(id EntityId) any {
	pos, ok := cs.index.Get(id)
	if !ok {
		return nil
	}
	return cs.at(pos)
}

// Delete removes the component owned by id.
func (cs *genericComponentStorage[T]) Delete(id EntityId) bool {
	pos, ok := cs.index.Get(id)
	if !ok {
		return false
	}

	last := len(cs.owners) - 1
	if pos != last {
		moved := cs.owners[last]
		*cs.at(pos) = *cs.at(last)
		cs.owners[pos] = moved
		cs.index.Put(moved, pos)
	}

	var zero T
	*cs.at(last) = zero
	cs.owners = cs.owners[:last]
	cs.index.Del(id)
	return true
}

// Has checks if id owns a component in this storage.
func (cs *genericComponentStorage[T]) Has(id EntityId) bool {
	_, ok := cs.index.Get(id)
	return ok
}

func (cs *genericComponentStorage[T]) Len() int {
	return len(cs.owners)
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range cs.owners {
			if !yield(id) {
				return
			}
		}
	}
}
