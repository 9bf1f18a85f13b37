package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSpawnSystem struct {
	spawned []ecs.EntityId
}

func (s *testSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.spawned = append(s.spawned,
		frame.Commands.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 1, DY: 1}),
		frame.Commands.Spawn(Position{X: 3, Y: 4}),
	)
}

type testDeleteSystem struct {
	entity ecs.EntityId
}

func (s *testDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.entity)
}

type testMixedSystem struct {
	entity ecs.EntityId
}

func (s *testMixedSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.AddComponent(s.entity, Velocity{DX: 1, DY: 1})
	frame.Commands.Delete(s.entity)
	frame.Commands.Spawn(Health{Current: 100, Max: 100})
}

type testSpawnThenDeleteSystem struct {
	spawned ecs.EntityId
	order   []string
}

func (s *testSpawnThenDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	s.spawned = frame.Commands.Spawn(Name{Value: "short lived"})
	frame.Commands.Delete(s.spawned)
	frame.Commands.Defer(func() {
		s.order = append(s.order, "defer")
	})
}

func TestCommandsSpawnReservesIds(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	system := &testSpawnSystem{}
	scheduler.Register(system)
	scheduler.Once(1.0)

	require.Len(t, system.spawned, 2)
	for _, id := range system.spawned {
		assert.True(t, storage.Alive(id))
		assert.NotNil(t, ecs.ReadComponent[Position](storage, id))
	}
	assert.NotNil(t, ecs.ReadComponent[Velocity](storage, system.spawned[0]))
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, system.spawned[1]))
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&testDeleteSystem{entity: id})
	scheduler.Once(1.0)

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 0, storage.Len())
}

func TestCommandsSkipMutationsOfDeletedEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&testMixedSystem{entity: id})
	scheduler.Once(1.0)

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 1, storage.Len())
	assert.Equal(t, 1, ecs.NewView[struct{ *Health }](storage).Count())
}

func TestCommandsSpawnAndDeleteSameFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	system := &testSpawnThenDeleteSystem{}
	scheduler.Register(system)
	scheduler.Once(1.0)

	assert.False(t, storage.Alive(system.spawned))
	assert.Equal(t, 0, storage.Len())
	assert.Equal(t, 0, ecs.NewView[struct{ *Name }](storage).Count())
	assert.Equal(t, []string{"defer"}, system.order)
}

type testComponentSwapSystem struct {
	entity ecs.EntityId
}

func (s *testComponentSwapSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.RemoveComponent(s.entity, reflect.TypeOf(Velocity{}))
	frame.Commands.AddComponent(s.entity, Health{Current: 1, Max: 1})
}

func TestCommandsAddRemove(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{}, Velocity{DX: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&testComponentSwapSystem{entity: id})
	scheduler.Once(1.0)

	assert.True(t, storage.Alive(id))
	assert.False(t, storage.HasComponent(id, reflect.TypeOf(Velocity{})))
	assert.True(t, storage.HasComponent(id, reflect.TypeOf(Health{})))
}
