package ecs

import "reflect"

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	storage *Storage
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands(storage *Storage) *Commands {
	return &Commands{storage: storage}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	entity     EntityId
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues a function execution operation. Deferred functions run last, after
// every structural change of the flush has been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn operation with the given components.
// The returned ID is reserved immediately and becomes queryable once the buffer is flushed.
func (c *Commands) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	id := c.storage.Reserve()
	c.spawns = append(c.spawns, spawnCommand{entity: id, components: components})
	return id
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Pending reports whether any operation is queued.
func (c *Commands) Pending() bool {
	return len(c.spawns)+len(c.deletes)+len(c.adds)+len(c.removes)+len(c.defers) > 0
}

// Flush applies all queued commands to the storage, resetting the buffer state.
// Spawns land first so an entity spawned and deleted in the same frame is removed cleanly.
func (c *Commands) Flush() {
	deletedEntities := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		deletedEntities[id] = true
	}

	for _, cmd := range c.spawns {
		c.storage.Insert(cmd.entity, cmd.components...)
	}

	for _, cmd := range c.adds {
		if !deletedEntities[cmd.entity] {
			c.storage.AddComponent(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.removes {
		if !deletedEntities[cmd.entity] {
			c.storage.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	for _, id := range c.deletes {
		c.storage.Delete(id)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
