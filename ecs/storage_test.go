package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
	}{
		{0, 1},
		{1, 1},
		{67890, 12345},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,generation=%d", tt.index, tt.generation), func(t *testing.T) {
			id := ecs.NewEntityId(tt.index, tt.generation)
			assert.Equal(t, tt.index, id.Index())
			assert.Equal(t, tt.generation, id.Generation())
		})
	}
}

func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1, Y: 2}, &Velocity{DX: 1}, Score(32))
	assert.NotEqual(t, ecs.EntityId(0), id)
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, storage.Len())

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)

	score := ecs.ReadComponent[Score](storage, id)
	require.NotNil(t, score)
	assert.Equal(t, Score(32), *score)
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(Health{}, struct{ Unregistered int }{}) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestDeleteInvalidatesId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1}, Name{Value: "first"})
	assert.True(t, storage.Delete(first))
	assert.False(t, storage.Alive(first))
	assert.False(t, storage.Delete(first))
	assert.Nil(t, ecs.ReadComponent[Position](storage, first))

	// The freed slot is reused with a new generation
	second := storage.Spawn(Position{X: 2})
	assert.Equal(t, first.Index(), second.Index())
	assert.NotEqual(t, first, second)
	assert.False(t, storage.Alive(first))
	assert.Nil(t, ecs.ReadComponent[Position](storage, first))

	pos := ecs.ReadComponent[Position](storage, second)
	require.NotNil(t, pos)
	assert.Equal(t, 2, pos.X)
}

func TestDeleteKeepsOtherComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, 5)
	for i := range ids {
		ids[i] = storage.Spawn(Position{X: i, Y: i * 10})
	}

	storage.Delete(ids[1])
	storage.Delete(ids[3])

	for _, i := range []int{0, 2, 4} {
		pos := ecs.ReadComponent[Position](storage, ids[i])
		require.NotNil(t, pos, "entity %d", i)
		assert.Equal(t, Position{X: i, Y: i * 10}, *pos)
	}
	assert.Equal(t, 3, storage.Len())
}

func TestReserveAndInsert(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Reserve()
	assert.True(t, storage.Alive(id))
	assert.Nil(t, ecs.ReadComponent[Position](storage, id))

	assert.True(t, storage.Insert(id, Position{X: 4, Y: 5}))
	assert.Equal(t, &Position{X: 4, Y: 5}, ecs.ReadComponent[Position](storage, id))

	storage.Delete(id)
	assert.False(t, storage.Insert(id, Position{}))
}

func TestAddRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 1})
	assert.True(t, storage.AddComponent(id, Health{Current: 5, Max: 10}))
	assert.True(t, storage.HasComponent(id, reflect.TypeOf(Health{})))

	assert.True(t, storage.RemoveComponent(id, reflect.TypeOf(Health{})))
	assert.False(t, storage.HasComponent(id, reflect.TypeOf(Health{})))
	assert.True(t, storage.Alive(id))

	// Removing the last component deletes the entity
	assert.True(t, storage.RemoveComponent(id, reflect.TypeOf(Position{})))
	assert.False(t, storage.Alive(id))
}

func TestComponentPointerSurvivesAppend(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 7})
	pos := ecs.ReadComponent[Position](storage, id)

	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: i})
	}

	pos.X = 99
	assert.Equal(t, 99, ecs.ReadComponent[Position](storage, id).X)
}

func TestComponentPointersAcrossBlocks(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	// 64 components fill the first block; the next spawn opens a second one.
	ids := make([]ecs.EntityId, 64)
	for i := range ids {
		ids[i] = storage.Spawn(Position{X: i})
	}
	first := ecs.ReadComponent[Position](storage, ids[0])
	last := ecs.ReadComponent[Position](storage, ids[63])

	next := storage.Spawn(Position{X: 64})
	second := ecs.ReadComponent[Position](storage, next)
	for i := 0; i < 200; i++ {
		storage.Spawn(Position{Y: i})
	}

	first.X = -1
	last.X = -2
	second.X = -3
	assert.Equal(t, -1, ecs.ReadComponent[Position](storage, ids[0]).X)
	assert.Equal(t, -2, ecs.ReadComponent[Position](storage, ids[63]).X)
	assert.Equal(t, -3, ecs.ReadComponent[Position](storage, next).X)
}

func TestReadSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var health *Health
	assert.False(t, storage.ReadSingleton(&health))

	storage.AddSingleton(Health{Current: 3, Max: 3})
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 3, health.Current)

	// Replacing writes in place
	storage.AddSingleton(Health{Current: 1, Max: 3})
	assert.Equal(t, 1, health.Current)

	assert.Panics(t, func() { storage.ReadSingleton(health) })
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.TotalEntityCount)
	assert.Equal(t, 0, stats.SingletonCount)
	assert.Empty(t, stats.ComponentBreakdown)

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	deleted := storage.Spawn(7)
	storage.Delete(deleted)

	ecs.NewSingleton[Health](storage, Health{Current: 1})
	ecs.NewSingleton[Tag](storage, "singleton")

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []ecs.ComponentStats{
		{Type: "int", Count: 2},
		{Type: "string", Count: 2},
	}, stats.ComponentBreakdown)
	assert.Equal(t, []string{"ecs_test.Health", "ecs_test.Tag"}, stats.SingletonTypes)
}
